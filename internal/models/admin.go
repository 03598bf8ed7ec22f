package models

type AdminStats struct {
	TotalScans     int     `json:"total_scans"`
	FakePercentage float64 `json:"fake_percentage"`
	ActiveUsers    int     `json:"active_users"`
}

// Dispute is a user's disagreement with a verdict, queued for admin review.
type Dispute struct {
	FeedbackID      string `json:"feedback_id,omitempty"`
	OriginalText    string `json:"original_text"`
	ModelPrediction string `json:"model_pred"`
	UserClaim       string `json:"user_claim"`
}

type UserRecord struct {
	Username  string `json:"username"`
	Role      Role   `json:"role"`
	CreatedAt string `json:"created_at"`
}
