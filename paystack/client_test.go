package paystack

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestInitialize(t *testing.T) {
	var gotAuth, gotPath string
	var gotBody map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  true,
			"message": "Authorization URL created",
			"data": map[string]interface{}{
				"authorization_url": "https://checkout.paystack.com/abc",
				"access_code":       "abc",
				"reference":         "ref-9",
			},
		})
	}))
	defer srv.Close()

	client := New(Config{SecretKey: "sk_test_key", BaseURL: srv.URL})

	resp, err := client.Initialize(context.Background(), InitializeRequest{
		Amount:   4900,
		Email:    "a@b.com",
		Metadata: map[string]string{"storeItemId": "item-1"},
	})
	if err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	if gotAuth != "Bearer sk_test_key" {
		t.Errorf("expected bearer auth header, got %q", gotAuth)
	}
	if gotPath != "/transaction/initialize" {
		t.Errorf("expected initialize path, got %q", gotPath)
	}
	if gotBody["amount"].(float64) != 4900 {
		t.Errorf("expected the amount forwarded unmodified, got %v", gotBody["amount"])
	}

	if !resp.Status || resp.Data.Reference != "ref-9" || resp.Data.AccessCode != "abc" {
		t.Errorf("unexpected decoded response: %+v", resp)
	}
}

func TestInitializeDeclined(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  false,
			"message": "Invalid key",
		})
	}))
	defer srv.Close()

	client := New(Config{SecretKey: "bad", BaseURL: srv.URL})

	resp, err := client.Initialize(context.Background(), InitializeRequest{Amount: 100, Email: "a@b.com"})
	if err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if resp.Status {
		t.Error("expected status false")
	}
	if resp.Message != "Invalid key" {
		t.Errorf("expected the provider message, got %q", resp.Message)
	}
}

func TestVerify(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  true,
			"message": "Verification successful",
			"data": map[string]interface{}{
				"reference": "ref-9",
				"amount":    4900,
				"status":    "success",
				"metadata":  map[string]string{"storeItemId": "item-1"},
			},
		})
	}))
	defer srv.Close()

	client := New(Config{SecretKey: "sk_test_key", BaseURL: srv.URL})

	resp, err := client.Verify(context.Background(), "ref-9")
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}

	if gotPath != "/transaction/verify/ref-9" {
		t.Errorf("expected verify path, got %q", gotPath)
	}
	if !resp.Status || resp.Data.Status != "success" || resp.Data.Amount != 4900 {
		t.Errorf("unexpected decoded response: %+v", resp)
	}
	if resp.Data.Metadata["storeItemId"] != "item-1" {
		t.Errorf("expected metadata relayed, got %v", resp.Data.Metadata)
	}
}

func TestVerifyTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	client := New(Config{SecretKey: "sk_test_key", BaseURL: srv.URL})

	if _, err := client.Verify(context.Background(), "ref-9"); err == nil {
		t.Error("expected an error when the gateway is unreachable")
	}
}
