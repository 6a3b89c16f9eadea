package webserver_test

import (
	"html"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/declara/declara/internal/webserver"
	"github.com/declara/declara/internal/webserver/infrastructure"
	"github.com/declara/declara/internal/webserver/model"
)

func TestInvite(t *testing.T) {
	db := infrastructure.Connect(":memory:")
	smtpMock := &infrastructure.SMTPMock{}
	app := bootstrapApp(db, smtpMock, webserver.Config{})

	adminCookie, err := login(app, "admin@example.com", "admin", t)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err.Error())
	}
	declaration := createDeclaration(db, adminCookie, app, "Town hall website", "Springfield town hall", t)

	smtpMock.Wg.Add(1)
	response, err := postRequest(
		url.Values{"email": {"invitee@example.com"}},
		adminCookie, app, "/declarations/"+declaration.Slug+"/members/invite", t,
	)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err.Error())
	}
	smtpMock.Wg.Wait()
	mustReturnStatus(response, http.StatusFound, t)

	if !smtpMock.CalledSend() {
		t.Error("Expected an invitation email to be sent")
	}
	message := smtpMock.LastMessage()
	if message.Address != "invitee@example.com" {
		t.Errorf("Invitation sent to the wrong address: %s", message.Address)
	}

	var accessRight model.AccessRight
	result := db.Where("declaration_id = ? AND tmp_user_email = ?", declaration.ID, "invitee@example.com").First(&accessRight)
	if result.Error != nil {
		t.Fatalf("Expected a pending access right to be created: %v", result.Error)
	}
	if accessRight.Status != model.AccessPending {
		t.Errorf("Expected access right status to be %s, got %s", model.AccessPending, accessRight.Status)
	}
	if accessRight.UserID != nil {
		t.Error("An invite to an unregistered address must not be bound to a user")
	}
	if accessRight.InviteExpiresAt == nil {
		t.Fatal("Expected the invite to carry an expiry date")
	}
	remaining := time.Until(*accessRight.InviteExpiresAt)
	if remaining < 6*24*time.Hour || remaining > 7*24*time.Hour {
		t.Errorf("Expected the invite to expire in seven days, expires in %s", remaining)
	}

	// Only the digest of the token may be stored
	rawToken := extractClaimToken(message.Body, t)
	if accessRight.InviteTokenHash == nil {
		t.Fatal("Expected the invite token digest to be stored")
	}
	if *accessRight.InviteTokenHash == rawToken {
		t.Error("The raw invite token must not be persisted")
	}
	if *accessRight.InviteTokenHash != model.InviteTokenDigest(rawToken) {
		t.Error("Stored digest does not match the emailed token")
	}
}

func TestInviteExistingUserBindsTheirAccount(t *testing.T) {
	db := infrastructure.Connect(":memory:")
	smtpMock := &infrastructure.SMTPMock{}
	app := bootstrapApp(db, smtpMock, webserver.Config{})

	if _, err := registerAndLogin(app, "Bob", "bob@example.com", "bob-password", t); err != nil {
		t.Fatalf("Unexpected error: %v", err.Error())
	}

	adminCookie, err := login(app, "admin@example.com", "admin", t)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err.Error())
	}
	declaration := createDeclaration(db, adminCookie, app, "Library catalogue", "Springfield library", t)

	smtpMock.Wg.Add(1)
	response, err := postRequest(
		url.Values{"email": {"bob@example.com"}},
		adminCookie, app, "/declarations/"+declaration.Slug+"/members/invite", t,
	)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err.Error())
	}
	smtpMock.Wg.Wait()
	mustReturnStatus(response, http.StatusFound, t)

	var bob model.User
	if result := db.Where("email = ?", "bob@example.com").First(&bob); result.Error != nil {
		t.Fatalf("Unexpected error: %v", result.Error)
	}

	var accessRight model.AccessRight
	result := db.Where("declaration_id = ? AND user_id = ?", declaration.ID, bob.ID).First(&accessRight)
	if result.Error != nil {
		t.Fatalf("Expected the invite to be bound to the existing account: %v", result.Error)
	}
	if accessRight.Status != model.AccessPending {
		t.Errorf("Expected access right status to be %s, got %s", model.AccessPending, accessRight.Status)
	}
	if accessRight.TmpUserEmail != nil {
		t.Error("An invite bound to a user must not keep a temporary email")
	}
}

func TestInviteDuplicatesReturnConflict(t *testing.T) {
	db := infrastructure.Connect(":memory:")
	smtpMock := &infrastructure.SMTPMock{}
	app := bootstrapApp(db, smtpMock, webserver.Config{})

	adminCookie, err := login(app, "admin@example.com", "admin", t)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err.Error())
	}
	declaration := createDeclaration(db, adminCookie, app, "Tax portal", "Revenue service", t)

	smtpMock.Wg.Add(1)
	response, err := postRequest(
		url.Values{"email": {"invitee@example.com"}},
		adminCookie, app, "/declarations/"+declaration.Slug+"/members/invite", t,
	)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err.Error())
	}
	smtpMock.Wg.Wait()
	mustReturnStatus(response, http.StatusFound, t)

	t.Run("Inviting an address that already holds a pending invite is rejected", func(t *testing.T) {
		response, err := postRequest(
			url.Values{"email": {"invitee@example.com"}},
			adminCookie, app, "/declarations/"+declaration.Slug+"/members/invite", t,
		)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		mustReturnStatus(response, http.StatusConflict, t)
	})

	t.Run("Inviting the address of a current member is rejected", func(t *testing.T) {
		response, err := postRequest(
			url.Values{"email": {"admin@example.com"}},
			adminCookie, app, "/declarations/"+declaration.Slug+"/members/invite", t,
		)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		mustReturnStatus(response, http.StatusConflict, t)
	})
}

func TestInviteValidation(t *testing.T) {
	db := infrastructure.Connect(":memory:")
	smtpMock := &infrastructure.SMTPMock{}
	app := bootstrapApp(db, smtpMock, webserver.Config{})

	adminCookie, err := login(app, "admin@example.com", "admin", t)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err.Error())
	}
	declaration := createDeclaration(db, adminCookie, app, "Transit planner", "City transit", t)

	t.Run("A malformed address re-renders the form with an error", func(t *testing.T) {
		response, err := postRequest(
			url.Values{"email": {"not-an-address"}},
			adminCookie, app, "/declarations/"+declaration.Slug+"/members/invite", t,
		)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		mustReturnStatus(response, http.StatusOK, t)
		checkErrorMessages(response, t, []string{"Incorrect email address"})
	})

	t.Run("An unknown role is rejected", func(t *testing.T) {
		response, err := postRequest(
			url.Values{"email": {"someone@example.com"}, "role": {"owner"}},
			adminCookie, app, "/declarations/"+declaration.Slug+"/members/invite", t,
		)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		mustReturnStatus(response, http.StatusBadRequest, t)
	})

	t.Run("Inviting to an unknown declaration returns not found", func(t *testing.T) {
		response, err := postRequest(
			url.Values{"email": {"someone@example.com"}},
			adminCookie, app, "/declarations/no-such-declaration/members/invite", t,
		)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		mustReturnStatus(response, http.StatusNotFound, t)
	})

	if smtpMock.CalledSend() {
		t.Error("No invitation email should have been sent")
	}
}

func TestInviteSurvivesEmailDispatchFailure(t *testing.T) {
	db := infrastructure.Connect(":memory:")
	smtpMock := &infrastructure.SMTPMock{FailSend: true}
	app := bootstrapApp(db, smtpMock, webserver.Config{})

	adminCookie, err := login(app, "admin@example.com", "admin", t)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err.Error())
	}
	declaration := createDeclaration(db, adminCookie, app, "Benefits portal", "Welfare office", t)

	smtpMock.Wg.Add(1)
	response, err := postRequest(
		url.Values{"email": {"invitee@example.com"}},
		adminCookie, app, "/declarations/"+declaration.Slug+"/members/invite", t,
	)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err.Error())
	}
	smtpMock.Wg.Wait()
	mustReturnStatus(response, http.StatusFound, t)

	// The access right stays so the invite can be resent later
	var count int64
	db.Model(&model.AccessRight{}).
		Where("declaration_id = ? AND tmp_user_email = ?", declaration.ID, "invitee@example.com").
		Count(&count)
	if count != 1 {
		t.Errorf("Expected the access right to survive the failed dispatch, found %d", count)
	}
}

func TestInviteEmailCarriesClaimLink(t *testing.T) {
	db := infrastructure.Connect(":memory:")
	smtpMock := &infrastructure.SMTPMock{}
	app := bootstrapApp(db, smtpMock, webserver.Config{BaseURL: "https://declara.example.com"})

	adminCookie, err := login(app, "admin@example.com", "admin", t)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err.Error())
	}
	declaration := createDeclaration(db, adminCookie, app, "School intranet", "Education board", t)

	smtpMock.Wg.Add(1)
	if _, err := postRequest(
		url.Values{"email": {"invitee@example.com"}},
		adminCookie, app, "/declarations/"+declaration.Slug+"/members/invite", t,
	); err != nil {
		t.Fatalf("Unexpected error: %v", err.Error())
	}
	smtpMock.Wg.Wait()

	token := extractClaimToken(smtpMock.LastMessage().Body, t)

	// The link decodes to <baseUrl>/accept-invite?token=<raw>&email=<email>
	link := "https://declara.example.com/accept-invite?token=" + token + "&email=invitee%40example.com"
	if !strings.Contains(html.UnescapeString(smtpMock.LastMessage().Body), link) {
		t.Errorf("Expected the email to carry the claim link %s, got: %s", link, smtpMock.LastMessage().Body)
	}
}
