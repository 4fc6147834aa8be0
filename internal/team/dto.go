package team

import "errors"

type CreateTeamDTO struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

func (dto CreateTeamDTO) Validate() error {
	if dto.Name == "" {
		return errors.New("name is required")
	}
	if len(dto.Name) > 120 {
		return errors.New("name must be less than 120 characters")
	}
	return nil
}

type UpdateTeamDTO struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (dto UpdateTeamDTO) Validate() error {
	if dto.Name != nil && *dto.Name == "" {
		return errors.New("name cannot be empty")
	}
	return nil
}

type AddMemberDTO struct {
	UserID string `json:"userId"`
	Role   string `json:"role,omitempty"`
}

func (dto AddMemberDTO) Validate() error {
	if dto.UserID == "" {
		return errors.New("userId is required")
	}
	if dto.Role != "" && dto.Role != MemberRoleLead && dto.Role != MemberRoleMember {
		return errors.New("role must be either 'LEAD' or 'MEMBER'")
	}
	return nil
}
