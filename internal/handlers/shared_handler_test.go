package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "famledger/internal/errors"
	"famledger/internal/models"
	"famledger/internal/pagination"
	"famledger/internal/services"
)

// --- mock member and analytics services ---

type mockMemberService struct {
	resolveShareTokenFn func(token string) (*models.FamilyMember, error)
}

func (m *mockMemberService) CreateMember(userID uint, name, relation string) (*models.FamilyMember, error) {
	return &models.FamilyMember{}, nil
}

func (m *mockMemberService) GetUserMembers(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.FamilyMember], error) {
	resp := pagination.NewPageResponse([]models.FamilyMember{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockMemberService) GetMemberByID(userID, memberID uint) (*models.FamilyMember, error) {
	return &models.FamilyMember{}, nil
}

func (m *mockMemberService) UpdateMember(userID, memberID uint, name, relation string) (*models.FamilyMember, error) {
	return &models.FamilyMember{}, nil
}

func (m *mockMemberService) DeleteMember(userID, memberID uint) error {
	return nil
}

func (m *mockMemberService) ResolveShareToken(token string) (*models.FamilyMember, error) {
	if m.resolveShareTokenFn != nil {
		return m.resolveShareTokenFn(token)
	}
	return &models.FamilyMember{}, nil
}

var _ services.MemberServicer = (*mockMemberService)(nil)

type mockAnalyticsService struct {
	getDashboardFn func(userID uint, memberID *uint) (*services.DashboardSummary, error)
}

func (m *mockAnalyticsService) GetDashboard(userID uint, memberID *uint) (*services.DashboardSummary, error) {
	if m.getDashboardFn != nil {
		return m.getDashboardFn(userID, memberID)
	}
	return &services.DashboardSummary{}, nil
}

var _ services.AnalyticsServicer = (*mockAnalyticsService)(nil)

func setupSharedRouter(handler *SharedHandler) *gin.Engine {
	r := gin.New()
	r.GET("/shared/:token/dashboard", handler.GetSharedDashboard)
	return r
}

// --- tests ---

func TestSharedHandler_GetSharedDashboard(t *testing.T) {
	t.Run("returns 200 with member-scoped dashboard", func(t *testing.T) {
		var capturedUserID uint
		var capturedMemberID *uint
		memberSvc := &mockMemberService{
			resolveShareTokenFn: func(token string) (*models.FamilyMember, error) {
				return &models.FamilyMember{
					Base:     models.Base{ID: 7},
					UserID:   42,
					Name:     "Maria",
					Relation: "Spouse",
				}, nil
			},
		}
		analyticsSvc := &mockAnalyticsService{
			getDashboardFn: func(userID uint, memberID *uint) (*services.DashboardSummary, error) {
				capturedUserID = userID
				capturedMemberID = memberID
				return &services.DashboardSummary{TotalExpenses: 4500}, nil
			},
		}
		handler := NewSharedHandler(memberSvc, analyticsSvc)
		r := setupSharedRouter(handler)

		rec := doRequest(r, "GET", "/shared/some-token/dashboard", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if capturedUserID != 42 {
			t.Errorf("expected dashboard for owner 42, got %d", capturedUserID)
		}
		if capturedMemberID == nil || *capturedMemberID != 7 {
			t.Errorf("expected member scope 7, got %v", capturedMemberID)
		}

		result := parseJSON(t, rec)
		member := result["member"].(map[string]interface{})
		if member["name"] != "Maria" {
			t.Errorf("expected member name Maria, got %v", member["name"])
		}
		dashboard := result["dashboard"].(map[string]interface{})
		if dashboard["total_expenses"].(float64) != 4500 {
			t.Errorf("expected total_expenses 4500, got %v", dashboard["total_expenses"])
		}
	})

	t.Run("returns 404 on unknown token", func(t *testing.T) {
		memberSvc := &mockMemberService{
			resolveShareTokenFn: func(_ string) (*models.FamilyMember, error) {
				return nil, apperrors.ErrShareNotFound
			},
		}
		handler := NewSharedHandler(memberSvc, &mockAnalyticsService{})
		r := setupSharedRouter(handler)

		rec := doRequest(r, "GET", "/shared/bogus/dashboard", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "SHARE_NOT_FOUND")
	})
}
