package render

import (
	"bytes"
	"testing"
	"time"

	"github.com/dmontes/ipogen/internal/domain"
	"github.com/dmontes/ipogen/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2026, 8, 30, 15, 4, 5, 0, time.UTC)
}

// uncompressedRenderer writes plain-text content streams so tests can
// probe the rendered body directly.
func uncompressedRenderer() *Renderer {
	return &Renderer{now: fixedClock, compress: false}
}

func TestRender_ProducesPDF(t *testing.T) {
	out, err := NewRenderer().Render(testutil.NewOrderRequest())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")), "output should be a PDF document")
}

func TestRender_SameDayIsByteIdentical(t *testing.T) {
	r := &Renderer{now: fixedClock, compress: true}
	req := testutil.NewOrderRequest()

	first, err := r.Render(req)
	require.NoError(t, err)
	second, err := r.Render(req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRender_SelectedTasksOnly(t *testing.T) {
	out, err := uncompressedRenderer().Render(testutil.NewOrderRequest())
	require.NoError(t, err)

	assert.Contains(t, string(out), "Survey")
	assert.Contains(t, string(out), "Review")
	assert.NotContains(t, string(out), "Drafting", "unselected tasks must not appear in the body")
}

func TestRender_TotalEqualsSumOfSelectedFees(t *testing.T) {
	out, err := uncompressedRenderer().Render(testutil.NewOrderRequest())
	require.NoError(t, err)

	// 1200.00 + 300.00 selected; 800.00 unselected.
	assert.Contains(t, string(out), "$1,500.00")
	assert.Contains(t, string(out), "Total Fee")
}

func TestRender_TaskOrderFollowsInsertionOrder(t *testing.T) {
	out, err := uncompressedRenderer().Render(testutil.NewOrderRequest())
	require.NoError(t, err)

	survey := bytes.Index(out, []byte("Survey"))
	review := bytes.Index(out, []byte("Review"))
	require.NotEqual(t, -1, survey)
	require.NotEqual(t, -1, review)
	assert.Less(t, survey, review)
}

func TestRender_FooterCarriesRevisionDate(t *testing.T) {
	out, err := uncompressedRenderer().Render(testutil.NewOrderRequest())
	require.NoError(t, err)

	assert.Contains(t, string(out), "rev 08/2026")
}

func TestRender_HeaderAndOpening(t *testing.T) {
	out, err := uncompressedRenderer().Render(testutil.NewOrderRequest())
	require.NoError(t, err)

	body := string(out)
	assert.Contains(t, body, "BRIDGE INSPECTION")
	assert.Contains(t, body, "INDIVIDUAL PROJECT ORDER NUMBER IPO-042")
	assert.Contains(t, body, "Acme County")
	assert.Contains(t, body, "August 15, 2024")
	assert.Contains(t, body, "Identification of Project:")
	assert.Contains(t, body, "Specific scope of basic Services:")
}

func TestRender_OptionalSectionsOmittedWhenEmpty(t *testing.T) {
	req := testutil.NewOrderRequest()
	req.ProjectUnderstanding = ""
	req.LotUnderstanding = ""

	out, err := uncompressedRenderer().Render(req)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "Overall Project Understanding:")
	assert.NotContains(t, string(out), "Lot Specific Project Understanding:")
}

func TestSubsectionHeading(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"sheet name", "Cover Sheet", true},
		{"sheet name with slash", "Existing Conditions Plan/Demolition Plan", true},
		{"full sentence", "This sheet will include erosion control measures designed for construction.", false},
		{"no keyword", "Appendix A", false},
		{"keyword but sentence", "The site plan is shown.", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, subsectionHeading(tc.in))
		})
	}
}

func TestTaskHeading(t *testing.T) {
	withCode := domain.TaskLine{Code: "110", Description: "Civil Engineering Design"}
	assert.Equal(t, "Task 110 – Engineering Design", taskHeading(withCode))

	adhoc := domain.TaskLine{Description: "Survey"}
	assert.Equal(t, "Survey", taskHeading(adhoc))
}

func TestFilename(t *testing.T) {
	req := testutil.NewOrderRequest()
	assert.Equal(t, "IPO_IPO-042_Bridge_Inspection.pdf", Filename(req))

	req.IPONumber = "01"
	req.ProjectName = "USF Fletcher District – Phase 1 Lot A Hotel and Conference Center"
	name := Filename(req)
	assert.Equal(t, "IPO_01_USF_Fletcher_District__Phase_1.pdf", name)
}
