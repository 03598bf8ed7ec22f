package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
	"go.uber.org/zap"

	"github.com/Rajankit27/FakeNewsDetection/internal/models"
)

type fakeCreds struct {
	token   string
	revoked int32
}

func (f *fakeCreds) Token() string { return f.token }

func (f *fakeCreds) Revoke(context.Context) error {
	atomic.AddInt32(&f.revoked, 1)
	f.token = ""
	return nil
}

func newTestClient(t *testing.T, routes string, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	r, err := RoutesFor(routes)
	if err != nil {
		t.Fatalf("routes: %v", err)
	}
	return NewClient(srv.URL, r, 5*time.Second, zap.NewNop())
}

func TestPredict_AttachesBearerAndDecodes(t *testing.T) {
	var gotAuth, gotPath, gotText string
	client := newTestClient(t, RoutesAPI, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		gotText = body["text"]
		w.Write([]byte(`{"log_id":"abc","prediction":"FAKE","confidence":91.26,"contributing_words":[{"word":"shocking","score":0.4}]}`))
	})

	v, err := client.Predict(context.Background(), &fakeCreds{token: "tok"}, "some long enough text for the model")
	assert.Equal(t, nil, err)
	assert.Equal(t, "Bearer tok", gotAuth)
	assert.Equal(t, "/api/predict", gotPath)
	assert.Equal(t, "some long enough text for the model", gotText)
	assert.Equal(t, "abc", v.LogID)
	assert.Equal(t, models.LabelFake, v.Prediction)
	assert.Equal(t, 1, len(v.ContributingWords))
}

func TestCall_OmitsBearerWithoutToken(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, RoutesAPI, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	})

	_, err := client.UserHistory(context.Background(), &fakeCreds{})
	assert.Equal(t, nil, err)
	assert.Equal(t, "", gotAuth)
}

func TestCall_OmitsBearerOnPublicEndpoint(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, RoutesAPI, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"status":"success","stats":{"FAKE":1,"REAL":3},"recent":[]}`))
	})

	h, err := client.PublicHistory(context.Background())
	assert.Equal(t, nil, err)
	assert.Equal(t, "", gotAuth)
	assert.Equal(t, 4, h.Total())
	assert.Equal(t, 25, h.FakePercent())
}

func TestCall_AuthRejectedRevokes(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusUnprocessableEntity} {
		client := newTestClient(t, RoutesAPI, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			w.Write([]byte(`{"msg":"Token has expired"}`))
		})
		creds := &fakeCreds{token: "tok"}

		_, err := client.AdminStats(context.Background(), creds)
		assert.Equal(t, true, errors.Is(err, ErrAuthRejected))
		assert.Equal(t, int32(1), atomic.LoadInt32(&creds.revoked))
	}
}

func TestCall_TokenFailureMessageRevokes(t *testing.T) {
	client := newTestClient(t, RoutesAPI, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"msg":"Signature verification failed"}`))
	})
	creds := &fakeCreds{token: "tok"}

	_, err := client.LiveNews(context.Background(), creds)
	assert.Equal(t, ErrAuthRejected, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&creds.revoked))
}

func TestLogin_UnauthorizedIsRequestFailed(t *testing.T) {
	client := newTestClient(t, RoutesAPI, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"msg":"Invalid credentials"}`))
	})

	_, err := client.Login(context.Background(), "alice", "wrong")
	var rf *RequestFailedError
	assert.Equal(t, true, errors.As(err, &rf))
	assert.Equal(t, http.StatusUnauthorized, rf.Status)
	assert.Equal(t, "Invalid credentials", rf.Message)
}

func TestCall_RequestFailedMessage(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"msg field", `{"msg":"Model offline"}`, "Model offline"},
		{"message field", `{"message":"boom"}`, "boom"},
		{"error field", `{"error":"bad"}`, "bad"},
		{"no field", `{}`, "Request Failed"},
		{"not json", `<html>oops</html>`, "Request Failed"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(t, RoutesAPI, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
				w.Write([]byte(tc.body))
			})
			creds := &fakeCreds{token: "tok"}
			_, err := client.Predict(context.Background(), creds, "text")
			assert.Equal(t, tc.want, MessageOf(err))
			assert.Equal(t, int32(0), atomic.LoadInt32(&creds.revoked))
		})
	}
}

func TestCall_EnvelopeFailureStatus(t *testing.T) {
	client := newTestClient(t, RoutesLegacy, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/predict", r.URL.Path)
		assert.Equal(t, "", r.Header.Get("Authorization"))
		w.Write([]byte(`{"status":"error","message":"Text too short"}`))
	})

	_, err := client.Predict(context.Background(), &fakeCreds{token: "tok"}, "text")
	assert.Equal(t, "Text too short", MessageOf(err))
}

func TestCall_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	routes, _ := RoutesFor(RoutesAPI)
	client := NewClient(url, routes, time.Second, zap.NewNop())

	_, err := client.Predict(context.Background(), &fakeCreds{token: "tok"}, "text")
	assert.Equal(t, true, errors.Is(err, ErrUnreachable))
}

func TestCall_UndecodableBodyIsUnreachable(t *testing.T) {
	client := newTestClient(t, RoutesAPI, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	})

	_, err := client.AdminDisputes(context.Background(), &fakeCreds{token: "tok"})
	assert.Equal(t, true, errors.Is(err, ErrUnreachable))
}

func TestFeedback_SendsCorrection(t *testing.T) {
	var body map[string]string
	client := newTestClient(t, RoutesAPI, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/feedback", r.URL.Path)
		json.NewDecoder(r.Body).Decode(&body)
		w.Write([]byte(`{"msg":"Feedback received. System learning..."}`))
	})

	msg, err := client.Feedback(context.Background(), &fakeCreds{token: "tok"}, "log-1", models.LabelReal)
	assert.Equal(t, nil, err)
	assert.Equal(t, "Feedback received. System learning...", msg)
	assert.Equal(t, "log-1", body["log_id"])
	assert.Equal(t, "REAL", body["user_correction"])
}

func TestRoutesFor_Unknown(t *testing.T) {
	_, err := RoutesFor("v3")
	assert.NotEqual(t, nil, err)
}
