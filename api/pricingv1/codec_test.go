package pricingv1

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

func TestCodec_Registered(t *testing.T) {
	c := encoding.GetCodec(CodecName)
	require.NotNil(t, c)
	assert.Equal(t, CodecName, c.Name())
}

func TestCodec_PlainStruct(t *testing.T) {
	c := jsonCodec{}
	b, err := c.Marshal(&ResolvePriceRequest{ProductID: "p1", BranchID: "A", ChannelID: "X"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"product_id":"p1","branch_id":"A","channel_id":"X"}`, string(b))

	var back ResolvePriceRequest
	require.NoError(t, c.Unmarshal(b, &back))
	assert.Equal(t, "p1", back.ProductID)
}

func TestCodec_ProtoMessage(t *testing.T) {
	c := jsonCodec{}

	b, err := c.Marshal(&emptypb.Empty{})
	require.NoError(t, err)
	assert.Equal(t, "{}", string(b))

	b, err = c.Marshal(wrapperspb.String("hola"))
	require.NoError(t, err)
	assert.Equal(t, `"hola"`, string(b))

	var out wrapperspb.StringValue
	require.NoError(t, c.Unmarshal(b, &out))
	assert.Equal(t, "hola", out.GetValue())
}
