package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/dmontes/ipogen/internal/domain"
	"github.com/dmontes/ipogen/internal/render"
	"github.com/dmontes/ipogen/internal/repository"
	"github.com/dmontes/ipogen/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrderService(t *testing.T) OrderService {
	t.Helper()
	database := testutil.NewTestDB(t)
	return NewOrderService(render.NewRenderer(), repository.NewSQLiteOrderRepo(database))
}

func TestOrderService_Generate(t *testing.T) {
	svc := newOrderService(t)
	ctx := context.Background()

	out, err := svc.Generate(ctx, testutil.NewOrderRequest())
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(out.Document, []byte("%PDF-")))
	assert.Equal(t, "IPO_IPO-042_Bridge_Inspection.pdf", out.Filename)

	require.NotNil(t, out.Record)
	assert.NotEmpty(t, out.Record.ID)
	assert.Equal(t, int64(150000), out.Record.TotalCents, "record total should sum only selected tasks")

	history, err := svc.History(ctx)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, out.Record.ID, history[0].ID)
}

func TestOrderService_Generate_ValidationBlocksGeneration(t *testing.T) {
	svc := newOrderService(t)
	ctx := context.Background()

	req := testutil.NewOrderRequest()
	req.ProjectNumber = ""

	out, err := svc.Generate(ctx, req)
	require.Error(t, err)
	assert.Nil(t, out, "no document may be produced for an invalid request")

	var verr *domain.ValidationError
	assert.ErrorAs(t, err, &verr)

	history, err := svc.History(ctx)
	require.NoError(t, err)
	assert.Empty(t, history, "failed generations must not be recorded")
}

func TestOrderService_Generate_NegativeFeeBlocked(t *testing.T) {
	svc := newOrderService(t)

	req := testutil.NewOrderRequest()
	req.Tasks = append(req.Tasks, domain.TaskLine{Description: "Rework", FeeCents: -5000, Selected: true})

	_, err := svc.Generate(context.Background(), req)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestOrderService_Preview(t *testing.T) {
	svc := newOrderService(t)

	preview := svc.Preview(testutil.NewOrderRequest())
	require.Len(t, preview.Selected, 2)
	assert.Equal(t, "Survey", preview.Selected[0].Description)
	assert.Equal(t, "Review", preview.Selected[1].Description)
	assert.Equal(t, int64(150000), preview.TotalCents)
}
