package listener

import (
	"context"
	"errors"
	"testing"

	"github.com/fekuna/omnipos-pricing-service/internal/inventory"
	"github.com/fekuna/omnipos-pricing-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-pricing-service/pkg/logger"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type saleRecorder struct {
	inventory.UseCase
	sales []dto.SaleInput
	fail  string
}

func (s *saleRecorder) DeductSale(_ context.Context, input *dto.SaleInput) error {
	s.sales = append(s.sales, *input)
	if input.ProductID == s.fail {
		return errors.New("boom")
	}
	return nil
}

type scriptedReader struct {
	msgs   [][]byte
	cancel context.CancelFunc
}

func (r *scriptedReader) ReadMessage(ctx context.Context) (kafka.Message, error) {
	if len(r.msgs) == 0 {
		r.cancel()
		<-ctx.Done()
		return kafka.Message{}, ctx.Err()
	}
	m := r.msgs[0]
	r.msgs = r.msgs[1:]
	return kafka.Message{Value: m}, nil
}

const order = `{
  "event_id": "e1",
  "event_type": "OrderCreated",
  "payload": {
    "id": "o-1",
    "merchant_id": "m1",
    "store_id": "b1",
    "items": [{"product_id": "arepa", "quantity": 2}, {"product_id": "jugo", "quantity": 1}]
  }
}`

func TestProcessMessage(t *testing.T) {
	rec := &saleRecorder{fail: "arepa"}
	l := NewInventoryListener(nil, rec, logger.NewNop())

	l.processMessage(context.Background(), []byte(order))

	require.Len(t, rec.sales, 2, "a failed line does not stop the rest")
	assert.Equal(t, dto.SaleInput{MerchantID: "m1", BranchID: "b1", OrderID: "o-1", ProductID: "arepa", Quantity: 2}, rec.sales[0])
	assert.Equal(t, "jugo", rec.sales[1].ProductID)
}

func TestProcessMessage_Ignored(t *testing.T) {
	rec := &saleRecorder{}
	l := NewInventoryListener(nil, rec, logger.NewNop())

	l.processMessage(context.Background(), []byte(`not json`))
	l.processMessage(context.Background(), []byte(`{"event_type":"OrderPaid","payload":{"id":"o-1"}}`))
	l.processMessage(context.Background(), []byte(`{"event_type":"OrderCreated","payload":{"id":"o-2","items":[{"product_id":"x","quantity":1}]}}`))

	assert.Empty(t, rec.sales)
}

func TestStart_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	rec := &saleRecorder{}
	reader := &scriptedReader{msgs: [][]byte{[]byte(order)}, cancel: cancel}

	done := make(chan struct{})
	go func() {
		NewInventoryListener(reader, rec, logger.NewNop()).Start(ctx)
		close(done)
	}()
	<-done

	assert.Len(t, rec.sales, 2)
}
