package transferlog

import (
	"math/big"
	"strings"
	"testing"

	"github.com/gabapcia/tokenwatch/internal/pkg/logger"
	"github.com/gabapcia/tokenwatch/internal/tokenmeta"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	// Initialize logger for tests to prevent nil pointer dereference
	_ = logger.Init("error")
}

// topicAddress pads a 20-byte address into the 32-byte topic layout used by
// indexed event parameters.
func topicAddress(address string) string {
	return "0x" + strings.Repeat("0", 24) + strings.TrimPrefix(address, "0x")
}

// amountData encodes an integer amount as a log data payload.
func amountData(amount *big.Int) string {
	return "0x" + amount.Text(16)
}

func transferLogFor(token, from, to string, amount *big.Int) Log {
	return Log{
		Address: token,
		Topics: []string{
			transferEventSignature,
			topicAddress(from),
			topicAddress(to),
		},
		Data: amountData(amount),
	}
}

func TestAddressFromTopic(t *testing.T) {
	t.Run("extracts rightmost 20 bytes", func(t *testing.T) {
		topic := topicAddress("0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48")

		addr, ok := addressFromTopic(topic)
		require.True(t, ok)
		assert.Equal(t, "0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48", addr)
	})

	t.Run("lowercases mixed case topics", func(t *testing.T) {
		topic := topicAddress("0xA0B86991C6218B36C1D19D4A2E9EB0CE3606EB48")

		addr, ok := addressFromTopic(topic)
		require.True(t, ok)
		assert.Equal(t, "0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48", addr)
	})

	t.Run("rejects short topics", func(t *testing.T) {
		_, ok := addressFromTopic("0xabc")
		assert.False(t, ok)
	})

	t.Run("rejects non-hex topics", func(t *testing.T) {
		_, ok := addressFromTopic("0x" + strings.Repeat("z", 64))
		assert.False(t, ok)
	})
}

func TestValueFromData(t *testing.T) {
	t.Run("decodes big-endian integer", func(t *testing.T) {
		value, ok := valueFromData("0xde0b6b3a7640000")
		require.True(t, ok)
		assert.Equal(t, "1000000000000000000", value.String())
	})

	t.Run("empty payload is zero", func(t *testing.T) {
		value, ok := valueFromData("0x")
		require.True(t, ok)
		assert.Zero(t, value.Sign())
	})

	t.Run("rejects undecodable payload", func(t *testing.T) {
		_, ok := valueFromData("0xnope")
		assert.False(t, ok)
	})
}

func TestDecode(t *testing.T) {
	const (
		tokenAddress  = "0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48"
		senderWallet  = "0x1111111111111111111111111111111111111111"
		receiverPool  = "0x2222222222222222222222222222222222222222"
		otherContract = "0x3333333333333333333333333333333333333333"
	)

	t.Run("decodes a transfer log with scaled amount", func(t *testing.T) {
		tokens := NewTokenResolverMock(t)
		tokens.EXPECT().Resolve(t.Context(), tokenAddress).Return(tokenmeta.TokenInfo{
			Address:  tokenAddress,
			Symbol:   "USDC",
			Name:     "USD Coin",
			Decimals: 6,
		})

		d := New(tokens)

		// 500 USDC in base units
		raw := big.NewInt(500_000_000)
		events := d.Decode(t.Context(), []Log{
			transferLogFor(tokenAddress, senderWallet, receiverPool, raw),
		})

		require.Len(t, events, 1)
		assert.Equal(t, tokenAddress, events[0].TokenAddress)
		assert.Equal(t, "USDC", events[0].TokenSymbol)
		assert.Equal(t, "USD Coin", events[0].TokenName)
		assert.Equal(t, uint8(6), events[0].Decimals)
		assert.Equal(t, senderWallet, events[0].From)
		assert.Equal(t, receiverPool, events[0].To)
		assert.Equal(t, raw, events[0].RawValue)
		assert.True(t, decimal.NewFromInt(500).Equal(events[0].ScaledValue),
			"expected 500, got %s", events[0].ScaledValue)
	})

	t.Run("scaling is exact for common decimal counts", func(t *testing.T) {
		cases := []struct {
			name     string
			decimals uint8
			raw      string
			scaled   string
		}{
			{"0 decimals", 0, "7", "7"},
			{"6 decimals", 6, "1500000", "1.5"},
			{"8 decimals", 8, "250000000", "2.5"},
			{"18 decimals", 18, "1000000000000000000", "1"},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				tokens := NewTokenResolverMock(t)
				tokens.EXPECT().Resolve(mock.Anything, tokenAddress).Return(tokenmeta.TokenInfo{
					Address:  tokenAddress,
					Symbol:   "TKN",
					Name:     "Token",
					Decimals: tc.decimals,
				})

				raw, ok := new(big.Int).SetString(tc.raw, 10)
				require.True(t, ok)

				events := New(tokens).Decode(t.Context(), []Log{
					transferLogFor(tokenAddress, senderWallet, receiverPool, raw),
				})

				require.Len(t, events, 1)
				expected, err := decimal.NewFromString(tc.scaled)
				require.NoError(t, err)
				assert.True(t, expected.Equal(events[0].ScaledValue),
					"expected %s, got %s", expected, events[0].ScaledValue)
			})
		}
	})

	t.Run("skips logs with a different event signature", func(t *testing.T) {
		tokens := NewTokenResolverMock(t)

		log := transferLogFor(tokenAddress, senderWallet, receiverPool, big.NewInt(1))
		log.Topics[0] = "0x8c5be1e5ebec7d5bd14f71427d1e84f3dd0314c0f7b2291e5b200ac8c7c3b925" // Approval

		events := New(tokens).Decode(t.Context(), []Log{log})
		assert.Empty(t, events)
	})

	t.Run("skips logs with the wrong topic count", func(t *testing.T) {
		tokens := NewTokenResolverMock(t)

		// ERC-721 transfers index the token ID as a fourth topic
		log := transferLogFor(tokenAddress, senderWallet, receiverPool, big.NewInt(1))
		log.Topics = append(log.Topics, topicAddress(otherContract))

		events := New(tokens).Decode(t.Context(), []Log{log})
		assert.Empty(t, events)
	})

	t.Run("skips logs with malformed topics", func(t *testing.T) {
		tokens := NewTokenResolverMock(t)

		log := transferLogFor(tokenAddress, senderWallet, receiverPool, big.NewInt(1))
		log.Topics[1] = "0xdead"

		events := New(tokens).Decode(t.Context(), []Log{log})
		assert.Empty(t, events)
	})

	t.Run("skips logs with undecodable data", func(t *testing.T) {
		tokens := NewTokenResolverMock(t)

		log := transferLogFor(tokenAddress, senderWallet, receiverPool, big.NewInt(1))
		log.Data = "0xnotanumber"

		events := New(tokens).Decode(t.Context(), []Log{log})
		assert.Empty(t, events)
	})

	t.Run("preserves emission order across mixed logs", func(t *testing.T) {
		tokens := NewTokenResolverMock(t)
		tokens.EXPECT().Resolve(mock.Anything, tokenAddress).Return(tokenmeta.TokenInfo{
			Address: tokenAddress, Symbol: "A", Name: "Token A", Decimals: 18,
		})
		tokens.EXPECT().Resolve(mock.Anything, otherContract).Return(tokenmeta.TokenInfo{
			Address: otherContract, Symbol: "B", Name: "Token B", Decimals: 6,
		})

		unrelated := transferLogFor(tokenAddress, senderWallet, receiverPool, big.NewInt(9))
		unrelated.Topics = unrelated.Topics[:1]

		events := New(tokens).Decode(t.Context(), []Log{
			transferLogFor(tokenAddress, senderWallet, receiverPool, big.NewInt(1)),
			unrelated,
			transferLogFor(otherContract, receiverPool, senderWallet, big.NewInt(2)),
		})

		require.Len(t, events, 2)
		assert.Equal(t, "A", events[0].TokenSymbol)
		assert.Equal(t, "B", events[1].TokenSymbol)
	})

	t.Run("empty input yields no events", func(t *testing.T) {
		tokens := NewTokenResolverMock(t)

		events := New(tokens).Decode(t.Context(), nil)
		assert.Empty(t, events)
	})
}
