package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "famledger/internal/errors"
	"famledger/internal/pagination"
	"famledger/internal/services"
)

// MemberHandler handles family member requests.
type MemberHandler struct {
	memberService services.MemberServicer
}

// NewMemberHandler creates a new MemberHandler.
func NewMemberHandler(memberService services.MemberServicer) *MemberHandler {
	return &MemberHandler{memberService: memberService}
}

// CreateMemberRequest represents the request payload for adding a family member.
type CreateMemberRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=100"`
	Relation string `json:"relation" binding:"max=50"`
}

// UpdateMemberRequest represents the request payload for updating a family member.
type UpdateMemberRequest struct {
	Name     string `json:"name" binding:"omitempty,min=1,max=100"`
	Relation string `json:"relation" binding:"omitempty,max=50"`
}

// CreateMember handles adding a family member.
// @Summary     Add a family member
// @Description Add a family member; a share token is minted for read-only dashboard access
// @Tags        members
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateMemberRequest true "Member details"
// @Success     201 {object} models.FamilyMember "Member created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /members [post]
func (h *MemberHandler) CreateMember(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	member, err := h.memberService.CreateMember(userID, req.Name, req.Relation)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"member": member})
}

// GetMembers handles listing the family roster.
// @Summary     Get family members
// @Tags        members
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.FamilyMember] "Paginated members"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /members [get]
func (h *MemberHandler) GetMembers(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.memberService.GetUserMembers(userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetMember handles retrieving a specific family member.
// @Summary     Get member by ID
// @Tags        members
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Member ID"
// @Success     200 {object} models.FamilyMember "Member details"
// @Failure     404 {object} ErrorResponse "Member not found"
// @Router      /members/{id} [get]
func (h *MemberHandler) GetMember(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	memberID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	member, err := h.memberService.GetMemberByID(userID, memberID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"member": member})
}

// UpdateMember handles updating a family member.
// @Summary     Update member
// @Tags        members
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int                 true "Member ID"
// @Param       request body UpdateMemberRequest true "Updated member details"
// @Success     200 {object} models.FamilyMember "Updated member"
// @Failure     404 {object} ErrorResponse "Member not found"
// @Router      /members/{id} [put]
func (h *MemberHandler) UpdateMember(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	memberID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	member, err := h.memberService.UpdateMember(userID, memberID, req.Name, req.Relation)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"member": member})
}

// DeleteMember handles removing a family member.
// @Summary     Delete member
// @Tags        members
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Member ID"
// @Success     200 {object} MessageResponse "Member deleted"
// @Failure     404 {object} ErrorResponse "Member not found"
// @Router      /members/{id} [delete]
func (h *MemberHandler) DeleteMember(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	memberID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.memberService.DeleteMember(userID, memberID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Member deleted successfully"})
}
