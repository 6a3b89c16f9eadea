package webserver_test

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/declara/declara/internal/webserver"
	"github.com/declara/declara/internal/webserver/infrastructure"
	"github.com/declara/declara/internal/webserver/model"
)

func TestMemberListRequiresMembership(t *testing.T) {
	db := infrastructure.Connect(":memory:")
	smtpMock := &infrastructure.SMTPMock{}
	app := bootstrapApp(db, smtpMock, webserver.Config{})

	adminCookie, err := login(app, "admin@example.com", "admin", t)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err.Error())
	}
	declaration := createDeclaration(db, adminCookie, app, "Town hall website", "Springfield town hall", t)
	inviteCollaborator(smtpMock, adminCookie, app, declaration.Slug, "pending@example.com", t)

	t.Run("A member sees everyone, pending invites included", func(t *testing.T) {
		response, err := getRequest(adminCookie, app, "/declarations/"+declaration.Slug+"/members", t)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		mustReturnStatus(response, http.StatusOK, t)

		doc, err := goquery.NewDocumentFromReader(response.Body)
		if err != nil {
			t.Fatal(err)
		}
		if doc.Find("table.members tbody tr").Length() != 2 {
			t.Errorf("Expected two rows in the member list, got %d", doc.Find("table.members tbody tr").Length())
		}
		if !strings.Contains(doc.Text(), "pending@example.com") {
			t.Error("Expected the pending invitee's address to be listed")
		}
	})

	t.Run("A non-member is turned away", func(t *testing.T) {
		outsiderCookie, err := registerAndLogin(app, "Outsider", "outsider@example.com", "outsider-password", t)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}

		response, err := getRequest(outsiderCookie, app, "/declarations/"+declaration.Slug+"/members", t)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		mustReturnStatus(response, http.StatusUnauthorized, t)
	})

	t.Run("A pending invitee is not yet a member", func(t *testing.T) {
		if _, err := registerAndLogin(app, "Invited", "invited@example.com", "invited-password", t); err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		inviteCollaborator(smtpMock, adminCookie, app, declaration.Slug, "invited@example.com", t)

		invitedCookie, err := login(app, "invited@example.com", "invited-password", t)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		response, err := getRequest(invitedCookie, app, "/declarations/"+declaration.Slug+"/members", t)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		mustReturnStatus(response, http.StatusUnauthorized, t)
	})

	t.Run("An unknown declaration returns not found", func(t *testing.T) {
		response, err := getRequest(adminCookie, app, "/declarations/no-such-declaration/members", t)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		mustReturnStatus(response, http.StatusNotFound, t)
	})
}

func TestRevoke(t *testing.T) {
	db := infrastructure.Connect(":memory:")
	smtpMock := &infrastructure.SMTPMock{}
	app := bootstrapApp(db, smtpMock, webserver.Config{})

	adminCookie, err := login(app, "admin@example.com", "admin", t)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err.Error())
	}
	declaration := createDeclaration(db, adminCookie, app, "Library catalogue", "Springfield library", t)

	bobCookie, err := registerAndLogin(app, "Bob", "bob@example.com", "bob-password", t)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err.Error())
	}
	token := inviteCollaborator(smtpMock, adminCookie, app, declaration.Slug, "bob@example.com", t)

	smtpMock.Wg.Add(1)
	if _, err := postRequest(url.Values{"token": {token}}, bobCookie, app, "/accept-invite", t); err != nil {
		t.Fatalf("Unexpected error: %v", err.Error())
	}
	smtpMock.Wg.Wait()

	var bob model.User
	if result := db.Where("email = ?", "bob@example.com").First(&bob); result.Error != nil {
		t.Fatalf("Unexpected error: %v", result.Error)
	}
	var bobAccessRight model.AccessRight
	if result := db.Where("declaration_id = ? AND user_id = ?", declaration.ID, bob.ID).First(&bobAccessRight); result.Error != nil {
		t.Fatalf("Unexpected error: %v", result.Error)
	}

	t.Run("A non-member may not revoke anyone", func(t *testing.T) {
		outsiderCookie, err := registerAndLogin(app, "Outsider", "outsider@example.com", "outsider-password", t)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}

		response, err := postRequest(
			url.Values{"id": {strconv.Itoa(int(bobAccessRight.ID))}},
			outsiderCookie, app, "/declarations/"+declaration.Slug+"/members/delete", t,
		)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		mustReturnStatus(response, http.StatusUnauthorized, t)
	})

	t.Run("A member may revoke another member", func(t *testing.T) {
		response, err := postRequest(
			url.Values{"id": {strconv.Itoa(int(bobAccessRight.ID))}},
			adminCookie, app, "/declarations/"+declaration.Slug+"/members/delete", t,
		)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		mustReturnStatus(response, http.StatusFound, t)

		var count int64
		db.Model(&model.AccessRight{}).Where("id = ?", bobAccessRight.ID).Count(&count)
		if count != 0 {
			t.Error("Expected the access right to be deleted")
		}

		// The revoked member immediately loses access
		response, err = getRequest(bobCookie, app, "/declarations/"+declaration.Slug+"/members", t)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		mustReturnStatus(response, http.StatusUnauthorized, t)
	})

	t.Run("An unknown access right returns not found", func(t *testing.T) {
		response, err := postRequest(
			url.Values{"id": {"99999"}},
			adminCookie, app, "/declarations/"+declaration.Slug+"/members/delete", t,
		)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		mustReturnStatus(response, http.StatusNotFound, t)
	})

	t.Run("A malformed identifier is a bad request", func(t *testing.T) {
		response, err := postRequest(
			url.Values{"id": {"not-a-number"}},
			adminCookie, app, "/declarations/"+declaration.Slug+"/members/delete", t,
		)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		mustReturnStatus(response, http.StatusBadRequest, t)
	})
}

func TestRevokedInviteCannotBeClaimed(t *testing.T) {
	db := infrastructure.Connect(":memory:")
	smtpMock := &infrastructure.SMTPMock{}
	app := bootstrapApp(db, smtpMock, webserver.Config{})

	adminCookie, err := login(app, "admin@example.com", "admin", t)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err.Error())
	}
	declaration := createDeclaration(db, adminCookie, app, "Tax portal", "Revenue service", t)
	token := inviteCollaborator(smtpMock, adminCookie, app, declaration.Slug, "pending@example.com", t)

	var accessRight model.AccessRight
	result := db.Where("invite_token_hash = ?", model.InviteTokenDigest(token)).First(&accessRight)
	if result.Error != nil {
		t.Fatalf("Unexpected error: %v", result.Error)
	}

	response, err := postRequest(
		url.Values{"id": {strconv.Itoa(int(accessRight.ID))}},
		adminCookie, app, "/declarations/"+declaration.Slug+"/members/delete", t,
	)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err.Error())
	}
	mustReturnStatus(response, http.StatusFound, t)

	pendingCookie, err := registerAndLogin(app, "Pending", "pending@example.com", "pending-password", t)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err.Error())
	}

	response, err = postRequest(url.Values{"token": {token}}, pendingCookie, app, "/accept-invite", t)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err.Error())
	}
	mustReturnStatus(response, http.StatusNotFound, t)
}
