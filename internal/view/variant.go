package view

import "fmt"

// Variant carries the cosmetic differences between the two UI builds: copy
// strings, badge wording and the stylesheet theme. Behaviour is shared.
type Variant struct {
	Name  string
	Title string
	Theme string

	ButtonLabels map[Mode]string
	Placeholders map[Mode]string
	BusyLabel    string

	StrongRealBadge string
	WeakRealBadge   string
	StrongFakeBadge string
	WeakFakeBadge   string

	FakeHeadline     string
	RealHeadline     string
	ReportTitle      string
	NoReportResults  string
	NoHistory        string
	DefaultReasoning string
	Unreachable      string

	Notices map[string]string
}

// Notice codes passed between redirects.
const (
	NoticeAdminRequired  = "admin_required"
	NoticeFeedbackAgreed = "feedback_agreed"
	NoticeDisputeLogged  = "dispute_logged"
	NoticeRegistered     = "registered"
	NoticeSettingsSaved  = "settings_saved"
	NoticeBusy           = "busy"
	NoticeRetrainStarted = "retrain_started"
)

var Console = Variant{
	Name:  "console",
	Title: "Veritas Command Center",
	Theme: "console",
	ButtonLabels: map[Mode]string{
		ModeText:  "Run Verification",
		ModeQuery: "Search & Analyze",
		ModeURL:   "Deep Scan",
	},
	Placeholders: map[Mode]string{
		ModeText:  "> Awaiting input stream for verification...",
		ModeQuery: "> Enter Query Parameters for Global Monitoring...",
		ModeURL:   "> Enter Target URL for Deep Scan...",
	},
	BusyLabel:        "Processing...",
	StrongRealBadge:  "Verified",
	WeakRealBadge:    "Likely Real",
	StrongFakeBadge:  "High Risk",
	WeakFakeBadge:    "Suspicious Content",
	FakeHeadline:     "Likely Fabricated",
	RealHeadline:     "Content Verified",
	ReportTitle:      "Global Intelligence Report",
	NoReportResults:  "No relevant global news found.",
	NoHistory:        "No verification history yet.",
	DefaultReasoning: "Analysis complete. Integrity verified against known linguistic patterns.",
	Unreachable:      "Connection Error: Check backend availability.",
	Notices: map[string]string{
		NoticeAdminRequired:  "Authentication Failed: Admin clearance required.",
		NoticeFeedbackAgreed: "Feedback recorded. Model weights updated.",
		NoticeDisputeLogged:  "Dispute logged. Sent for admin review.",
		NoticeRegistered:     "Registration successful. Please login.",
		NoticeSettingsSaved:  "Settings saved.",
		NoticeBusy:           "A request is already in progress.",
		NoticeRetrainStarted: "Retraining sequence initiated.",
	},
}

var Classic = Variant{
	Name:  "classic",
	Title: "Fake News Detector",
	Theme: "classic",
	ButtonLabels: map[Mode]string{
		ModeText:  "Verify Authenticity",
		ModeQuery: "Search & Analyze",
		ModeURL:   "Scan URL",
	},
	Placeholders: map[Mode]string{
		ModeText:  "Paste the news article text here (at least 20 characters)...",
		ModeQuery: "Enter a topic to search global news...",
		ModeURL:   "https://example.com/article",
	},
	BusyLabel:        "Processing...",
	StrongRealBadge:  "Verified Source",
	WeakRealBadge:    "Likely Real",
	StrongFakeBadge:  "High Risk",
	WeakFakeBadge:    "Suspicious Content",
	FakeHeadline:     "⚠ Likely Fake News",
	RealHeadline:     "✅ Likely Real News",
	ReportTitle:      "Global News Analysis",
	NoReportResults:  "No relevant global news found.",
	NoHistory:        "No verification history yet.",
	DefaultReasoning: "",
	Unreachable:      "Could not reach the server. Check backend availability.",
	Notices: map[string]string{
		NoticeAdminRequired:  "Admin access required.",
		NoticeFeedbackAgreed: "Thanks, your feedback was recorded.",
		NoticeDisputeLogged:  "Your correction was sent for review.",
		NoticeRegistered:     "Registration successful. Please login.",
		NoticeSettingsSaved:  "Settings saved.",
		NoticeBusy:           "Please wait for the current request to finish.",
		NoticeRetrainStarted: "Model retraining started.",
	},
}

// VariantByName resolves the ui.variant setting.
func VariantByName(name string) (Variant, error) {
	switch name {
	case Console.Name, "":
		return Console, nil
	case Classic.Name:
		return Classic, nil
	}
	return Variant{}, fmt.Errorf("unknown ui variant %q", name)
}

// Notice returns the message for a notice code, or "" for unknown codes.
func (v Variant) Notice(code string) string {
	return v.Notices[code]
}
