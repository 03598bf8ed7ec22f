package render

import (
	"fmt"
	"math"

	"github.com/Rajankit27/FakeNewsDetection/internal/models"
	"github.com/Rajankit27/FakeNewsDetection/internal/view"
)

// StrongConfidence is the threshold above which a verdict gets the strong badge.
const StrongConfidence = 80.0

// Trust score boundaries for the source reputation badge.
const (
	HighTrustScore = 80.0
	LowTrustScore  = 30.0
)

// Tone drives the colour of badges, cards and meters.
type Tone string

const (
	TonePositive Tone = "positive"
	ToneNegative Tone = "negative"
	ToneNeutral  Tone = "neutral"
)

type Badge struct {
	Text string
	Tone Tone
}

// VerdictBadge maps a prediction and its confidence to the badge shown next to it.
func VerdictBadge(v view.Variant, prediction models.Label, confidence float64) Badge {
	strong := confidence > StrongConfidence
	if prediction == models.LabelFake {
		if strong {
			return Badge{Text: v.StrongFakeBadge, Tone: ToneNegative}
		}
		return Badge{Text: v.WeakFakeBadge, Tone: ToneNegative}
	}
	if strong {
		return Badge{Text: v.StrongRealBadge, Tone: TonePositive}
	}
	return Badge{Text: v.WeakRealBadge, Tone: TonePositive}
}

// TrustBadge classifies a 0..100 source reputation score.
func TrustBadge(score float64) Badge {
	s := formatScore(score)
	switch {
	case score >= HighTrustScore:
		return Badge{Text: fmt.Sprintf("High Trust (%s/100)", s), Tone: TonePositive}
	case score <= LowTrustScore:
		return Badge{Text: fmt.Sprintf("Low Trust (%s/100)", s), Tone: ToneNegative}
	}
	return Badge{Text: fmt.Sprintf("Neutral (%s/100)", s), Tone: ToneNeutral}
}

// RoundConfidence rounds to one decimal place.
func RoundConfidence(c float64) float64 {
	return math.Round(c*10) / 10
}

func toneFor(l models.Label) Tone {
	if l == models.LabelFake {
		return ToneNegative
	}
	return TonePositive
}

func formatScore(f float64) string {
	if f == math.Trunc(f) {
		return fmt.Sprintf("%d", int(f))
	}
	return fmt.Sprintf("%.1f", f)
}
