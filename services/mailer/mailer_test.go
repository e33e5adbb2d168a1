package mailer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func testCreds() Credentials {
	return Credentials{
		ServiceID:  "svc_1",
		TemplateID: "tpl_1",
		PublicKey:  "pub_1",
		PrivateKey: "priv_1",
	}
}

func TestCredentialsValidateNamesMissingField(t *testing.T) {
	cases := []struct {
		mutate func(*Credentials)
		want   string
	}{
		{func(c *Credentials) { c.ServiceID = "" }, "service ID"},
		{func(c *Credentials) { c.TemplateID = "" }, "template ID"},
		{func(c *Credentials) { c.PublicKey = "" }, "public key"},
		{func(c *Credentials) { c.PrivateKey = "" }, "private key"},
	}
	for _, tc := range cases {
		creds := testCreds()
		tc.mutate(&creds)
		err := creds.Validate()
		if err == nil {
			t.Fatalf("expected error for missing %s", tc.want)
		}
		if !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("error %q should name the missing %s", err, tc.want)
		}
	}
	if err := testCreds().Validate(); err != nil {
		t.Fatalf("complete credentials should validate: %v", err)
	}
}

func TestSendRejectsMissingFieldsBeforeNetwork(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	m := &APIMailer{Creds: testCreds(), BaseURL: srv.URL, HTTP: srv.Client()}
	if _, err := m.Send(context.Background(), Message{Subject: "s", Body: "b"}); err == nil {
		t.Fatal("missing to_email must be rejected")
	}
	if _, err := m.Send(context.Background(), Message{ToEmail: "a@b.c", Body: "b"}); err == nil {
		t.Fatal("missing subject must be rejected")
	}
	if called {
		t.Fatal("validation failures must not reach the network")
	}
}

func TestSendPostsTemplateParams(t *testing.T) {
	var got apiRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}))
	defer srv.Close()

	m := &APIMailer{Creds: testCreds(), BaseURL: srv.URL, HTTP: srv.Client()}
	result, err := m.Send(context.Background(), Message{
		ToEmail:  "user@rent2reuse.com",
		Subject:  "Ticket update",
		Body:     "Your ticket was resolved.",
		TicketID: "TCK-42",
	})
	if err != nil {
		t.Fatalf("send failed: %v", err)
	}
	if result != "OK" {
		t.Fatalf("expected provider body, got %q", result)
	}
	if got.ServiceID != "svc_1" || got.UserID != "pub_1" || got.AccessToken != "priv_1" {
		t.Fatalf("credentials not carried: %+v", got)
	}
	if got.TemplateParams["to_email"] != "user@rent2reuse.com" || got.TemplateParams["ticket_id"] != "TCK-42" {
		t.Fatalf("template params not carried: %+v", got.TemplateParams)
	}
}

func TestSendSurfacesProviderFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid template", http.StatusBadRequest)
	}))
	defer srv.Close()

	m := &APIMailer{Creds: testCreds(), BaseURL: srv.URL, HTTP: srv.Client()}
	_, err := m.Send(context.Background(), Message{ToEmail: "a@b.c", Subject: "s", Body: "m"})
	if err == nil {
		t.Fatal("provider failure must surface")
	}
	if !strings.Contains(err.Error(), "400") {
		t.Fatalf("error should carry the provider status: %v", err)
	}
}
