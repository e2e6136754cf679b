package session

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tjtrack/tjtrack-web/internal/models"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	s, err := NewStore(db, nil)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return s
}

func profile(email string) *models.ProfileResponse {
	return &models.ProfileResponse{
		UserID: "u-1",
		Name:   "Alice",
		Email:  email,
		Roles:  []string{models.RoleClient},
	}
}

func TestLoginAndGet(t *testing.T) {
	s := testStore(t)
	id, err := s.Login("tok-123", profile("alice@shop.tld"))
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	sess := s.Get(id)
	if !sess.IsAuthenticated() {
		t.Fatal("stored session should be authenticated")
	}
	if sess.Token != "tok-123" {
		t.Errorf("token = %q, want tok-123", sess.Token)
	}
	if sess.User.Email != "alice@shop.tld" {
		t.Errorf("email = %q", sess.User.Email)
	}
}

func TestGetUnknownID(t *testing.T) {
	s := testStore(t)
	if sess := s.Get("nope"); sess != nil {
		t.Errorf("got %+v, want nil for unknown id", sess)
	}
	if sess := s.Get(""); sess != nil {
		t.Errorf("got %+v, want nil for empty id", sess)
	}
}

func TestCorruptPayloadDiscarded(t *testing.T) {
	s := testStore(t)
	id, err := s.Login("tok", profile("alice@shop.tld"))
	if err != nil {
		t.Fatal(err)
	}

	if err := s.db.Model(&Record{}).Where("id = ?", id).
		Update("user_json", "{not json").Error; err != nil {
		t.Fatal(err)
	}

	if sess := s.Get(id); sess != nil {
		t.Fatalf("got %+v, want nil for corrupt payload", sess)
	}
	// the row itself is gone, not just skipped
	var count int64
	s.db.Model(&Record{}).Where("id = ?", id).Count(&count)
	if count != 0 {
		t.Error("corrupt session row should be deleted")
	}
}

func TestUpdateUserKeepsToken(t *testing.T) {
	s := testStore(t)
	id, err := s.Login("tok-original", profile("alice@shop.tld"))
	if err != nil {
		t.Fatal(err)
	}

	refreshed := profile("alice@shop.tld")
	refreshed.Name = "Alice B."
	refreshed.IsApproved = true
	if err := s.UpdateUser(id, refreshed); err != nil {
		t.Fatalf("update: %v", err)
	}

	sess := s.Get(id)
	if sess == nil {
		t.Fatal("session gone after update")
	}
	if sess.Token != "tok-original" {
		t.Errorf("token = %q, update must not touch it", sess.Token)
	}
	if sess.User.Name != "Alice B." || !sess.User.IsApproved {
		t.Errorf("profile not refreshed: %+v", sess.User)
	}
}

func TestLogout(t *testing.T) {
	s := testStore(t)
	id, err := s.Login("tok", profile("alice@shop.tld"))
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Logout(id); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if sess := s.Get(id); sess != nil {
		t.Error("session survives logout")
	}
	// idempotent
	if err := s.Logout(id); err != nil {
		t.Errorf("second logout: %v", err)
	}
	if err := s.Logout(""); err != nil {
		t.Errorf("empty logout: %v", err)
	}
}

func TestIsAuthenticated(t *testing.T) {
	var nilSess *Session
	if nilSess.IsAuthenticated() {
		t.Error("nil session must not be authenticated")
	}
	if (&Session{Token: "t"}).IsAuthenticated() {
		t.Error("token without profile must not be authenticated")
	}
	if (&Session{User: profile("a@b.c")}).IsAuthenticated() {
		t.Error("profile without token must not be authenticated")
	}
	full := &Session{Token: "t", User: profile("a@b.c")}
	if !full.IsAuthenticated() {
		t.Error("complete session should be authenticated")
	}
}
