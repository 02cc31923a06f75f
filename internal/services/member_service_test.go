package services

import (
	"testing"

	"famledger/internal/pagination"
	"famledger/internal/sharetoken"
	"famledger/internal/testutil"
)

func TestCreateMember(t *testing.T) {
	t.Run("mints_share_token", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewMemberService(db)
		user := testutil.CreateTestUser(t, db)

		member, err := svc.CreateMember(user.ID, "Maria", "Spouse")
		testutil.AssertNoError(t, err)

		if member.ID == 0 {
			t.Fatal("expected non-zero member ID")
		}
		if !sharetoken.IsValid(member.ShareToken) {
			t.Errorf("expected valid share token, got %q", member.ShareToken)
		}
	})

	t.Run("tokens_are_unique", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewMemberService(db)
		user := testutil.CreateTestUser(t, db)

		m1, err := svc.CreateMember(user.ID, "Maria", "")
		testutil.AssertNoError(t, err)
		m2, err := svc.CreateMember(user.ID, "Alex", "")
		testutil.AssertNoError(t, err)

		if m1.ShareToken == m2.ShareToken {
			t.Error("expected distinct share tokens")
		}
	})

	t.Run("empty_name_rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewMemberService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateMember(user.ID, "", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestGetUserMembers(t *testing.T) {
	t.Run("scoped_to_user_in_roster_order", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewMemberService(db)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)

		first := testutil.CreateTestMember(t, db, user1.ID)
		testutil.CreateTestMember(t, db, user1.ID)
		testutil.CreateTestMember(t, db, user2.ID)

		page := pagination.PageRequest{Page: 1, PageSize: 20}
		result, err := svc.GetUserMembers(user1.ID, page)
		testutil.AssertNoError(t, err)

		if result.TotalItems != 2 {
			t.Fatalf("expected 2 members, got %d", result.TotalItems)
		}
		if result.Data[0].ID != first.ID {
			t.Errorf("expected roster order, got member %d first", result.Data[0].ID)
		}
	})
}

func TestUpdateMember(t *testing.T) {
	t.Run("updates_name_keeps_token", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewMemberService(db)
		user := testutil.CreateTestUser(t, db)
		member := testutil.CreateTestMember(t, db, user.ID)
		token := member.ShareToken

		updated, err := svc.UpdateMember(user.ID, member.ID, "Renamed", "")
		testutil.AssertNoError(t, err)

		if updated.Name != "Renamed" {
			t.Errorf("expected name Renamed, got %s", updated.Name)
		}
		if updated.ShareToken != token {
			t.Error("expected share token unchanged")
		}
	})

	t.Run("cannot_update_other_users_member", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewMemberService(db)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)
		member := testutil.CreateTestMember(t, db, user2.ID)

		_, err := svc.UpdateMember(user1.ID, member.ID, "Hijacked", "")
		testutil.AssertAppError(t, err, "MEMBER_NOT_FOUND")
	})
}

func TestDeleteMember(t *testing.T) {
	t.Run("member_gone_after_delete", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewMemberService(db)
		user := testutil.CreateTestUser(t, db)
		member := testutil.CreateTestMember(t, db, user.ID)

		testutil.AssertNoError(t, svc.DeleteMember(user.ID, member.ID))

		_, err := svc.GetMemberByID(user.ID, member.ID)
		testutil.AssertAppError(t, err, "MEMBER_NOT_FOUND")
	})

	t.Run("deleted_members_token_stops_resolving", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewMemberService(db)
		user := testutil.CreateTestUser(t, db)
		member := testutil.CreateTestMember(t, db, user.ID)

		testutil.AssertNoError(t, svc.DeleteMember(user.ID, member.ID))

		_, err := svc.ResolveShareToken(member.ShareToken)
		testutil.AssertAppError(t, err, "SHARE_NOT_FOUND")
	})
}

func TestResolveShareToken(t *testing.T) {
	t.Run("resolves_to_member", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewMemberService(db)
		user := testutil.CreateTestUser(t, db)
		member := testutil.CreateTestMember(t, db, user.ID)

		resolved, err := svc.ResolveShareToken(member.ShareToken)
		testutil.AssertNoError(t, err)

		if resolved.ID != member.ID {
			t.Errorf("expected member %d, got %d", member.ID, resolved.ID)
		}
	})

	t.Run("malformed_token", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewMemberService(db)

		_, err := svc.ResolveShareToken("not-a-token")
		testutil.AssertAppError(t, err, "SHARE_NOT_FOUND")
	})

	t.Run("unknown_token", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewMemberService(db)

		_, err := svc.ResolveShareToken(sharetoken.New())
		testutil.AssertAppError(t, err, "SHARE_NOT_FOUND")
	})
}
