package packet_test

import (
	"strings"
	"testing"

	"github.com/calebcase/oops"
	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/bitpacket/bitstream"
	"github.com/calebcase/bitpacket/packet"
)

func hex(t *testing.T, s string) *bitstream.Cursor {
	t.Helper()

	c, err := bitstream.ParseHex(s)
	require.NoError(t, err)

	return c
}

func binary(t *testing.T, parts ...string) *bitstream.Cursor {
	t.Helper()

	c, err := bitstream.ParseBinary(strings.Join(parts, ""))
	require.NoError(t, err)

	return c
}

func lit(version uint8, value uint64) *packet.Packet {
	return &packet.Packet{
		Version: version,
		TypeID:  packet.Literal.TypeID,
		Kind:    packet.Literal,
		Value:   value,
	}
}

func TestDecoder(t *testing.T) {
	t.Run("examples", func(t *testing.T) {
		type TC struct {
			Input     string
			Packet    *packet.Packet
			Remaining uint64
			Mark      error
		}

		tcs := []TC{
			{
				Input:     "D2FE28",
				Packet:    lit(6, 2021),
				Remaining: 3,
				Mark:      oops.New("unexpected"),
			},
			{
				Input: "38006F45291200",
				Packet: &packet.Packet{
					Version:    1,
					TypeID:     6,
					Kind:       packet.LessThan,
					LengthType: packet.TotalLength,
					Children: []*packet.Packet{
						lit(6, 10),
						lit(2, 20),
					},
				},
				Remaining: 7,
				Mark:      oops.New("unexpected"),
			},
			{
				Input: "EE00D40C823060",
				Packet: &packet.Packet{
					Version:    7,
					TypeID:     3,
					Kind:       packet.Maximum,
					LengthType: packet.SubPacketCount,
					Children: []*packet.Packet{
						lit(2, 1),
						lit(4, 2),
						lit(1, 3),
					},
				},
				Remaining: 5,
				Mark:      oops.New("unexpected"),
			},
		}

		for _, tc := range tcs {
			t.Run(tc.Input, func(t *testing.T) {
				c := hex(t, tc.Input)

				p, err := packet.Parse(c)
				require.NoError(t, err, tc.Mark)

				t.Logf("Packet: %s\n", spew.Sdump(p))

				require.Empty(t, cmp.Diff(tc.Packet, p), tc.Mark)
				require.Equal(t, tc.Remaining, c.Remaining(), tc.Mark)

				// Whatever is left over is zero padding.
				pad, err := c.ReadBits(uint(c.Remaining()))
				require.NoError(t, err, tc.Mark)
				require.Equal(t, uint64(0), pad, tc.Mark)
			})
		}
	})

	t.Run("literal", func(t *testing.T) {
		type TC struct {
			Name  string
			Bits  []string
			Value uint64
			Err   error
			Mark  error
		}

		tcs := []TC{
			{
				Name:  "single group",
				Bits:  []string{"000", "100", "01010"},
				Value: 10,
				Mark:  oops.New("unexpected"),
			},
			{
				Name:  "leading zero groups",
				Bits:  append([]string{"000", "100"}, append(repeat("10000", 20), "00001")...),
				Value: 1,
				Mark:  oops.New("unexpected"),
			},
			{
				Name:  "max",
				Bits:  append([]string{"000", "100"}, append(repeat("11111", 15), "01111")...),
				Value: 0xFFFF_FFFF_FFFF_FFFF,
				Mark:  oops.New("unexpected"),
			},
			{
				Name: "overflow",
				Bits: append([]string{"000", "100"}, append(repeat("11111", 16), "00000")...),
				Err:  packet.ErrValueOverflow,
				Mark: oops.New("unexpected"),
			},
			{
				Name: "truncated group",
				Bits: []string{"110", "100", "1011"},
				Err:  bitstream.ErrTruncatedInput,
				Mark: oops.New("unexpected"),
			},
			{
				Name: "missing final group",
				Bits: []string{"110", "100", "10111"},
				Err:  bitstream.ErrTruncatedInput,
				Mark: oops.New("unexpected"),
			},
			{
				Name: "truncated header",
				Bits: []string{"110", "10"},
				Err:  bitstream.ErrTruncatedInput,
				Mark: oops.New("unexpected"),
			},
		}

		for _, tc := range tcs {
			t.Run(tc.Name, func(t *testing.T) {
				p, err := packet.Parse(binary(t, tc.Bits...))
				if tc.Err != nil {
					require.ErrorIs(t, err, tc.Err, tc.Mark)
					require.Nil(t, p, tc.Mark)

					return
				}
				require.NoError(t, err, tc.Mark)

				require.True(t, p.Kind.Literal(), tc.Mark)
				require.Equal(t, tc.Value, p.Value, tc.Mark)
			})
		}
	})

	t.Run("operator", func(t *testing.T) {
		type TC struct {
			Name     string
			Bits     []string
			Children int
			Err      error
			Mark     error
		}

		one := "00010000001" // v0 literal 1

		tcs := []TC{
			{
				Name:     "span",
				Bits:     []string{"001", "000", "0", "000000000010110", one, one},
				Children: 2,
				Mark:     oops.New("unexpected"),
			},
			{
				Name:     "count",
				Bits:     []string{"001", "000", "1", "00000000010", one, one},
				Children: 2,
				Mark:     oops.New("unexpected"),
			},
			{
				Name: "span overrun",
				Bits: []string{"001", "000", "0", "000000000001010", one},
				Err:  packet.ErrLengthMismatch,
				Mark: oops.New("unexpected"),
			},
			{
				Name: "span underrun",
				Bits: []string{"001", "000", "0", "000000000001101", one, "00"},
				Err:  packet.ErrLengthMismatch,
				Mark: oops.New("unexpected"),
			},
			{
				Name: "nested span overrun",
				Bits: []string{
					"001", "000", "0", "000000000011101", // outer span 29
					"001", "000", "0", "000000000010110", // inner span 22
					one, one,
				},
				Err:  packet.ErrLengthMismatch,
				Mark: oops.New("unexpected"),
			},
			{
				Name: "empty span",
				Bits: []string{"001", "000", "0", "000000000000000", one},
				Err:  packet.ErrLengthMismatch,
				Mark: oops.New("unexpected"),
			},
			{
				Name: "span past input",
				Bits: []string{"001", "000", "0", "000000001100100", one},
				Err:  bitstream.ErrTruncatedInput,
				Mark: oops.New("unexpected"),
			},
			{
				Name: "empty count",
				Bits: []string{"001", "000", "1", "00000000000", one},
				Err:  packet.ErrArity,
				Mark: oops.New("unexpected"),
			},
			{
				Name: "count past input",
				Bits: []string{"001", "000", "1", "00000000011", one, one},
				Err:  bitstream.ErrTruncatedInput,
				Mark: oops.New("unexpected"),
			},
			{
				Name: "truncated span length",
				Bits: []string{"001", "000", "0", "0000000"},
				Err:  bitstream.ErrTruncatedInput,
				Mark: oops.New("unexpected"),
			},
		}

		for _, tc := range tcs {
			t.Run(tc.Name, func(t *testing.T) {
				d := packet.NewDecoder(binary(t, tc.Bits...))

				p, err := d.Decode()
				require.Equal(t, 0, d.Depth(), tc.Mark)

				if tc.Err != nil {
					require.ErrorIs(t, err, tc.Err, tc.Mark)
					require.True(t, packet.Error.Has(err) || bitstream.Error.Has(err), tc.Mark)

					return
				}
				require.NoError(t, err, tc.Mark)

				require.Equal(t, packet.Sum, p.Kind, tc.Mark)
				require.Len(t, p.Children, tc.Children, tc.Mark)
			})
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		input := "9C0141080250320F1802104A08"

		a, err := packet.Parse(hex(t, input))
		require.NoError(t, err)

		b, err := packet.Parse(hex(t, input))
		require.NoError(t, err)

		require.True(t, cmp.Equal(a, b))
		require.NotSame(t, a, b)
	})

	t.Run("sequence", func(t *testing.T) {
		// Two literals back to back on one cursor.
		c := binary(t, "110", "100", "10111", "11110", "00101", "010", "100", "01010")

		d := packet.NewDecoder(c)

		p, err := d.Decode()
		require.NoError(t, err)
		require.Equal(t, uint64(2021), p.Value)
		require.Equal(t, uint64(21), c.Position())

		p, err = d.Decode()
		require.NoError(t, err)
		require.Equal(t, uint64(10), p.Value)
		require.Equal(t, uint8(2), p.Version)
		require.Equal(t, uint64(0), c.Remaining())
	})
}

func repeat(s string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = s
	}

	return out
}
