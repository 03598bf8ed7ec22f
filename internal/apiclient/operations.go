package apiclient

import (
	"context"

	"github.com/Rajankit27/FakeNewsDetection/internal/models"
)

type textRequest struct {
	Text string `json:"text"`
}

type queryRequest struct {
	Query string `json:"query"`
}

type urlRequest struct {
	URL string `json:"url"`
}

type authRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is what the backend issues on a successful login.
type LoginResponse struct {
	Token    string      `json:"token"`
	Role     models.Role `json:"role"`
	Username string      `json:"username"`
}

type messageResponse struct {
	Msg     string `json:"msg"`
	Message string `json:"message"`
}

func (m messageResponse) text() string {
	if m.Msg != "" {
		return m.Msg
	}
	return m.Message
}

type feedbackRequest struct {
	LogID          string       `json:"log_id"`
	UserCorrection models.Label `json:"user_correction"`
}

// Predict classifies raw text.
func (c *Client) Predict(ctx context.Context, creds Credentials, text string) (*models.SingleVerdict, error) {
	var v models.SingleVerdict
	if err := c.Call(ctx, creds, c.routes.Predict, textRequest{Text: text}, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// PredictFromQuery searches articles about a topic and classifies each.
func (c *Client) PredictFromQuery(ctx context.Context, creds Credentials, query string) (*models.GlobalReport, error) {
	var r models.GlobalReport
	if err := c.Call(ctx, creds, c.routes.PredictFromQuery, queryRequest{Query: query}, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// PredictFromURL fetches an article and classifies it.
func (c *Client) PredictFromURL(ctx context.Context, creds Credentials, target string) (*models.SingleVerdict, error) {
	var v models.SingleVerdict
	if err := c.Call(ctx, creds, c.routes.PredictFromURL, urlRequest{URL: target}, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// PublicHistory returns the label counts and recent scans across all users.
func (c *Client) PublicHistory(ctx context.Context) (*models.PublicHistory, error) {
	var h models.PublicHistory
	if err := c.Call(ctx, nil, c.routes.PublicHistory, nil, &h); err != nil {
		return nil, err
	}
	return &h, nil
}

// Register creates an account and returns the backend's confirmation message.
func (c *Client) Register(ctx context.Context, username, password string) (string, error) {
	var m messageResponse
	if err := c.Call(ctx, nil, c.routes.Register, authRequest{Username: username, Password: password}, &m); err != nil {
		return "", err
	}
	return m.text(), nil
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	var l LoginResponse
	if err := c.Call(ctx, nil, c.routes.Login, authRequest{Username: username, Password: password}, &l); err != nil {
		return nil, err
	}
	if l.Token == "" {
		return nil, &RequestFailedError{Status: 200, Message: "Login response carried no token"}
	}
	return &l, nil
}

func (c *Client) UserHistory(ctx context.Context, creds Credentials) ([]models.HistoryEntry, error) {
	var entries []models.HistoryEntry
	if err := c.Call(ctx, creds, c.routes.UserHistory, nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *Client) AdminStats(ctx context.Context, creds Credentials) (*models.AdminStats, error) {
	var s models.AdminStats
	if err := c.Call(ctx, creds, c.routes.AdminStats, nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *Client) AdminDisputes(ctx context.Context, creds Credentials) ([]models.Dispute, error) {
	var d []models.Dispute
	if err := c.Call(ctx, creds, c.routes.AdminDisputes, nil, &d); err != nil {
		return nil, err
	}
	return d, nil
}

func (c *Client) AdminUsers(ctx context.Context, creds Credentials) ([]models.UserRecord, error) {
	var u []models.UserRecord
	if err := c.Call(ctx, creds, c.routes.AdminUsers, nil, &u); err != nil {
		return nil, err
	}
	return u, nil
}

// Retrain starts a one-shot backend training job and returns its acknowledgement.
func (c *Client) Retrain(ctx context.Context, creds Credentials) (string, error) {
	var m messageResponse
	if err := c.Call(ctx, creds, c.routes.Retrain, nil, &m); err != nil {
		return "", err
	}
	return m.text(), nil
}

// Feedback files a corrected label for a logged prediction.
func (c *Client) Feedback(ctx context.Context, creds Credentials, logID string, correction models.Label) (string, error) {
	var m messageResponse
	if err := c.Call(ctx, creds, c.routes.Feedback, feedbackRequest{LogID: logID, UserCorrection: correction}, &m); err != nil {
		return "", err
	}
	return m.text(), nil
}

func (c *Client) LiveNews(ctx context.Context, creds Credentials) ([]models.LiveArticle, error) {
	var a []models.LiveArticle
	if err := c.Call(ctx, creds, c.routes.LiveNews, nil, &a); err != nil {
		return nil, err
	}
	return a, nil
}
