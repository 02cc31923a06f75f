package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "famledger/internal/errors"
	"famledger/internal/models"
	"famledger/internal/pagination"
	"famledger/internal/sharetoken"
)

// memberService handles family member business logic.
type memberService struct {
	db *gorm.DB
}

// NewMemberService creates a new MemberServicer.
func NewMemberService(db *gorm.DB) MemberServicer {
	return &memberService{db: db}
}

// CreateMember creates a family member and mints their share token.
func (s *memberService) CreateMember(userID uint, name, relation string) (*models.FamilyMember, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "member name is required")
	}

	member := &models.FamilyMember{
		UserID:     userID,
		Name:       name,
		Relation:   relation,
		ShareToken: sharetoken.New(),
	}

	if err := s.db.Create(member).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return member, nil
}

// GetUserMembers retrieves a paginated list of the user's family members.
func (s *memberService) GetUserMembers(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.FamilyMember], error) {
	page.Defaults()

	base := s.db.Model(&models.FamilyMember{}).Where("user_id = ?", userID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var members []models.FamilyMember
	if err := base.Order("id").Scopes(pagination.Paginate(page)).Find(&members).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(members, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetMemberByID returns a member by ID if they belong to the user.
func (s *memberService) GetMemberByID(userID, memberID uint) (*models.FamilyMember, error) {
	var member models.FamilyMember
	if err := s.db.Where("id = ? AND user_id = ?", memberID, userID).First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMemberNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &member, nil
}

// UpdateMember updates a member's name and relation.
func (s *memberService) UpdateMember(userID, memberID uint, name, relation string) (*models.FamilyMember, error) {
	member, err := s.GetMemberByID(userID, memberID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if name != "" {
		updates["name"] = name
	}
	if relation != "" {
		updates["relation"] = relation
	}

	if len(updates) > 0 {
		if err := s.db.Model(member).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return member, nil
}

// DeleteMember soft-deletes a member. Their transactions survive and fold
// into the owner's bucket in aggregations.
func (s *memberService) DeleteMember(userID, memberID uint) error {
	member, err := s.GetMemberByID(userID, memberID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(member).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// ResolveShareToken maps an opaque share token to the member it belongs to.
// Unknown tokens yield ErrShareNotFound, never a generic failure.
func (s *memberService) ResolveShareToken(token string) (*models.FamilyMember, error) {
	if !sharetoken.IsValid(token) {
		return nil, apperrors.ErrShareNotFound
	}

	var member models.FamilyMember
	if err := s.db.Where("share_token = ?", token).First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShareNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &member, nil
}
