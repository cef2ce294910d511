// Copyright 2025 dotandev
// SPDX-License-Identifier: Apache-2.0

package strval

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotandev/strval/internal/errors"
	"github.com/dotandev/strval/internal/xdr"
)

// asJSON serializes a decoded tree so tests can compare rendered output.
func asJSON(t *testing.T, v interface{}) string {
	t.Helper()
	out, err := json.Marshal(v)
	require.NoError(t, err)
	return string(out)
}

func sortedMap(t *testing.T, entries ...xdr.ScMapEntry) xdr.ScVal {
	t.Helper()
	m, err := xdr.SortedScMap(entries)
	require.NoError(t, err)
	return xdr.ScValObject(xdr.ScObjectMap(m))
}

func TestToJSONScalars(t *testing.T) {
	c := testCodec()
	tests := []struct {
		name string
		val  xdr.ScVal
		ty   *xdr.ScSpecTypeDef
		want string
	}{
		{"bool true", xdr.ScValStatic(xdr.ScStaticScsTrue), simple(xdr.ScSpecTypeBool), `true`},
		{"bool false", xdr.ScValStatic(xdr.ScStaticScsFalse), simple(xdr.ScSpecTypeBool), `false`},
		{"u63", xdr.ScValU63(42), simple(xdr.ScSpecTypeU64), `42`},
		{"u32", xdr.ScValU32(7), simple(xdr.ScSpecTypeU32), `7`},
		{"i32", xdr.ScValI32(-7), simple(xdr.ScSpecTypeI32), `-7`},
		{"u64 beyond 53 bits", xdr.ScValObject(xdr.ScObjectU64(18446744073709551615)),
			simple(xdr.ScSpecTypeU64), `18446744073709551615`},
		{"i64", xdr.ScValObject(xdr.ScObjectI64(-5)), simple(xdr.ScSpecTypeI64), `-5`},
		{"symbol", symVal(t, "hey"), simple(xdr.ScSpecTypeSymbol), `"hey"`},
		{"bytes hex", xdr.ScValObject(xdr.ScObjectBytes(xdr.ScBytes{0x00, 0xab, 0xff})),
			simple(xdr.ScSpecTypeBytes), `"00abff"`},
		{"bytesN hex", xdr.ScValObject(xdr.ScObjectBytes(xdr.ScBytes{0x01})),
			specTypePtr(xdr.SpecTypeBytesN(1)), `"01"`},
		{"account id", xdr.ScValObject(xdr.ScObjectAccountId(xdr.AccountIdEd25519([32]byte{}))),
			simple(xdr.ScSpecTypeAccountId), `"` + zeroAccount + `"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.ToJSON(tt.val, tt.ty)
			require.NoError(t, err)
			assert.Equal(t, tt.want, asJSON(t, got))
		})
	}
}

func TestToJSON128BitAlwaysStrings(t *testing.T) {
	c := testCodec()

	max := xdr.ScValObject(xdr.ScObjectI128(xdr.Int128Parts{Lo: ^xdr.Uint64(0), Hi: 0x7fffffffffffffff}))
	got, err := c.ToJSON(max, simple(xdr.ScSpecTypeI128))
	require.NoError(t, err)
	assert.Equal(t, "170141183460469231731687303715884105727", got)

	min := xdr.ScValObject(xdr.ScObjectI128(xdr.Int128Parts{Lo: 0, Hi: 0x8000000000000000}))
	got, err = c.ToJSON(min, simple(xdr.ScSpecTypeI128))
	require.NoError(t, err)
	assert.Equal(t, "-170141183460469231731687303715884105728", got)

	u := xdr.ScValObject(xdr.ScObjectU128(xdr.Int128Parts{Lo: ^xdr.Uint64(0), Hi: ^xdr.Uint64(0)}))
	got, err = c.ToJSON(u, simple(xdr.ScSpecTypeU128))
	require.NoError(t, err)
	assert.Equal(t, "340282366920938463463374607431768211455", got)
}

func TestToJSONOption(t *testing.T) {
	c := testCodec()
	ty := xdr.SpecTypeOption(xdr.SpecTypeSimple(xdr.ScSpecTypeU128))

	got, err := c.ToJSON(xdr.ScValObjectNone(), &ty)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = c.ToJSON(xdr.ScValStatic(xdr.ScStaticScsVoid), &ty)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = c.ToJSON(xdr.ScValObject(xdr.ScObjectU128(xdr.Int128Parts{Lo: 5})), &ty)
	require.NoError(t, err)
	assert.Equal(t, "5", got)
}

func TestToJSONObjectNoneOutsideOption(t *testing.T) {
	c := testCodec()
	_, err := c.ToJSON(xdr.ScValObjectNone(), simple(xdr.ScSpecTypeU64))
	assert.ErrorIs(t, err, errors.ErrInvalidValue)
}

func TestToJSONVecAndTuple(t *testing.T) {
	c := testCodec()

	vec := xdr.ScValObject(xdr.ScObjectVec(xdr.ScVec{symVal(t, "Hello"), symVal(t, "world")}))
	vecTy := xdr.SpecTypeVec(xdr.SpecTypeSimple(xdr.ScSpecTypeSymbol))
	got, err := c.ToJSON(vec, &vecTy)
	require.NoError(t, err)
	assert.Equal(t, `["Hello","world"]`, asJSON(t, got))

	tup := xdr.ScValObject(xdr.ScObjectVec(xdr.ScVec{symVal(t, "a"), xdr.ScValU32(3)}))
	tupTy := xdr.SpecTypeTuple(
		xdr.SpecTypeSimple(xdr.ScSpecTypeSymbol),
		xdr.SpecTypeSimple(xdr.ScSpecTypeU32),
	)
	got, err = c.ToJSON(tup, &tupTy)
	require.NoError(t, err)
	assert.Equal(t, `["a",3]`, asJSON(t, got))

	_, err = c.ToJSON(vec, &tupTy)
	assert.ErrorIs(t, err, errors.ErrInvalidValue)
}

func TestToJSONMapKeepsCanonicalOrder(t *testing.T) {
	c := testCodec()
	val := sortedMap(t,
		xdr.ScMapEntry{Key: symVal(t, "b"), Val: xdr.ScValU32(1)},
		xdr.ScMapEntry{Key: symVal(t, "a"), Val: xdr.ScValU32(2)},
	)
	ty := xdr.SpecTypeMap(
		xdr.SpecTypeSimple(xdr.ScSpecTypeSymbol),
		xdr.SpecTypeSimple(xdr.ScSpecTypeU32),
	)
	got, err := c.ToJSON(val, &ty)
	require.NoError(t, err)
	assert.Equal(t, `{"a":2,"b":1}`, asJSON(t, got))
}

func TestToJSONMapStringifiesNonStringKeys(t *testing.T) {
	c := testCodec()
	val := sortedMap(t,
		xdr.ScMapEntry{Key: xdr.ScValU32(1), Val: symVal(t, "x")},
		xdr.ScMapEntry{Key: xdr.ScValU32(2), Val: symVal(t, "y")},
	)
	ty := xdr.SpecTypeMap(
		xdr.SpecTypeSimple(xdr.ScSpecTypeU32),
		xdr.SpecTypeSimple(xdr.ScSpecTypeSymbol),
	)
	got, err := c.ToJSON(val, &ty)
	require.NoError(t, err)
	assert.Equal(t, `{"1":"x","2":"y"}`, asJSON(t, got))
}

func TestToJSONStructDeclaredFieldOrder(t *testing.T) {
	c := testCodec()
	// Canonical map order is (a, b); Pair declares (b, a).
	val := sortedMap(t,
		xdr.ScMapEntry{Key: symVal(t, "a"), Val: symVal(t, "x")},
		xdr.ScMapEntry{Key: symVal(t, "b"), Val: xdr.ScValU32(1)},
	)
	ty := xdr.SpecTypeUdt("Pair")
	got, err := c.ToJSON(val, &ty)
	require.NoError(t, err)
	assert.Equal(t, `{"b":1,"a":"x"}`, asJSON(t, got))
}

func TestToJSONStructMissingField(t *testing.T) {
	c := testCodec()
	val := sortedMap(t,
		xdr.ScMapEntry{Key: symVal(t, "a"), Val: symVal(t, "x")},
	)
	ty := xdr.SpecTypeUdt("Pair")
	_, err := c.ToJSON(val, &ty)
	assert.ErrorIs(t, err, errors.ErrInvalidValue)
}

func TestToJSONTupleStruct(t *testing.T) {
	c := testCodec()
	val := xdr.ScValObject(xdr.ScObjectVec(xdr.ScVec{xdr.ScValU32(1), xdr.ScValU32(2)}))
	ty := xdr.SpecTypeUdt("Point")
	got, err := c.ToJSON(val, &ty)
	require.NoError(t, err)
	assert.Equal(t, `[1,2]`, asJSON(t, got))
}

func TestToJSONUnion(t *testing.T) {
	c := testCodec()
	ty := xdr.SpecTypeUdt("Color")

	plain := xdr.ScValObject(xdr.ScObjectVec(xdr.ScVec{symVal(t, "Red")}))
	got, err := c.ToJSON(plain, &ty)
	require.NoError(t, err)
	assert.Equal(t, `"Red"`, asJSON(t, got))

	payload := xdr.ScValObject(xdr.ScObjectVec(xdr.ScVec{symVal(t, "Named"), symVal(t, "blue")}))
	got, err = c.ToJSON(payload, &ty)
	require.NoError(t, err)
	assert.Equal(t, `{"Named":"blue"}`, asJSON(t, got))
}

func TestToJSONUnionErrors(t *testing.T) {
	c := testCodec()
	ty := xdr.SpecTypeUdt("Color")

	_, err := c.ToJSON(xdr.ScValObject(xdr.ScObjectVec(xdr.ScVec{symVal(t, "Blue")})), &ty)
	assert.ErrorIs(t, err, errors.ErrEnumCase)

	// A payload case without its payload element.
	_, err = c.ToJSON(xdr.ScValObject(xdr.ScObjectVec(xdr.ScVec{symVal(t, "Named")})), &ty)
	assert.ErrorIs(t, err, errors.ErrEnumMissingSecondValue)
}

func TestToJSONConstEnum(t *testing.T) {
	c := testCodec()
	ty := xdr.SpecTypeUdt("Verdict")

	got, err := c.ToJSON(xdr.ScValU32(1), &ty)
	require.NoError(t, err)
	assert.Equal(t, `1`, asJSON(t, got))

	_, err = c.ToJSON(xdr.ScValU32(9), &ty)
	assert.ErrorIs(t, err, errors.ErrEnumConst)
}

func TestToJSONUnsupported(t *testing.T) {
	c := testCodec()

	bits := xdr.Uint64(1)
	_, err := c.ToJSON(xdr.ScVal{Type: xdr.ScValTypeScvBitset, Bits: &bits}, simple(xdr.ScSpecTypeBitset))
	assert.ErrorIs(t, err, errors.ErrUnsupported)

	_, err = c.ToJSON(xdr.ScValStatic(xdr.ScStaticScsLedgerKeyContractCode), simple(xdr.ScSpecTypeU32))
	assert.ErrorIs(t, err, errors.ErrInvalidValue)
}

func TestSchemalessToJSONBytesAsArray(t *testing.T) {
	got, err := ToJSON(xdr.ScValObject(xdr.ScObjectBytes(xdr.ScBytes{0x00, 0xab, 0xff})))
	require.NoError(t, err)
	assert.Equal(t, `[0,171,255]`, asJSON(t, got))
}

func TestSchemalessToJSONNested(t *testing.T) {
	m, err := xdr.SortedScMap([]xdr.ScMapEntry{
		{Key: symVal(t, "n"), Val: xdr.ScValObject(xdr.ScObjectU128(xdr.Int128Parts{Lo: 7}))},
		{Key: xdr.ScValU32(3), Val: xdr.ScValStatic(xdr.ScStaticScsTrue)},
	})
	require.NoError(t, err)
	got, err := ToJSON(xdr.ScValObject(xdr.ScObjectMap(m)))
	require.NoError(t, err)
	// Numeric keys are stringified; symbol keys stand as themselves.
	assert.Equal(t, `{"3":true,"n":"7"}`, asJSON(t, got))
}

func TestToStringTopLevelSymbolUnquoted(t *testing.T) {
	got, err := ToString(symVal(t, "hey"))
	require.NoError(t, err)
	assert.Equal(t, "hey", got)

	// Nested symbols keep their quotes.
	got, err = ToString(xdr.ScValObject(xdr.ScObjectVec(xdr.ScVec{symVal(t, "hey")})))
	require.NoError(t, err)
	assert.Equal(t, `["hey"]`, got)
}

func TestRoundTripValueThroughJSON(t *testing.T) {
	// Property: from_json(to_json(v, t), t) == v for in-domain values.
	c := testCodec()
	tests := []struct {
		name string
		val  xdr.ScVal
		ty   xdr.ScSpecTypeDef
	}{
		{"u32", xdr.ScValU32(7), xdr.SpecTypeSimple(xdr.ScSpecTypeU32)},
		{"i64", xdr.ScValObject(xdr.ScObjectI64(-9)), xdr.SpecTypeSimple(xdr.ScSpecTypeI64)},
		{"i128", xdr.ScValObject(xdr.ScObjectI128(xdr.Int128Parts{Lo: ^xdr.Uint64(0), Hi: 0x7fffffffffffffff})),
			xdr.SpecTypeSimple(xdr.ScSpecTypeI128)},
		{"symbol", symVal(t, "k"), xdr.SpecTypeSimple(xdr.ScSpecTypeSymbol)},
		{"bytes", xdr.ScValObject(xdr.ScObjectBytes(xdr.ScBytes{1, 2, 3})), xdr.SpecTypeSimple(xdr.ScSpecTypeBytes)},
		{"account", xdr.ScValObject(xdr.ScObjectAccountId(xdr.AccountIdEd25519([32]byte{}))),
			xdr.SpecTypeSimple(xdr.ScSpecTypeAccountId)},
		{"vec", xdr.ScValObject(xdr.ScObjectVec(xdr.ScVec{symVal(t, "a"), symVal(t, "b")})),
			xdr.SpecTypeVec(xdr.SpecTypeSimple(xdr.ScSpecTypeSymbol))},
		{"map", sortedMap(t,
			xdr.ScMapEntry{Key: symVal(t, "a"), Val: xdr.ScValU32(2)},
			xdr.ScMapEntry{Key: symVal(t, "b"), Val: xdr.ScValU32(1)},
		), xdr.SpecTypeMap(xdr.SpecTypeSimple(xdr.ScSpecTypeSymbol), xdr.SpecTypeSimple(xdr.ScSpecTypeU32))},
		{"struct", sortedMap(t,
			xdr.ScMapEntry{Key: symVal(t, "a"), Val: symVal(t, "x")},
			xdr.ScMapEntry{Key: symVal(t, "b"), Val: xdr.ScValU32(1)},
		), xdr.SpecTypeUdt("Pair")},
		{"union", xdr.ScValObject(xdr.ScObjectVec(xdr.ScVec{symVal(t, "Named"), symVal(t, "blue")})),
			xdr.SpecTypeUdt("Color")},
		{"enum", xdr.ScValU32(1), xdr.SpecTypeUdt("Verdict")},
		{"option none", xdr.ScValObjectNone(), xdr.SpecTypeOption(xdr.SpecTypeSimple(xdr.ScSpecTypeU128))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoded, err := c.ToJSON(tt.val, &tt.ty)
			require.NoError(t, err)

			// Re-enter through JSON text, the way a CLI user would.
			text, err := json.Marshal(decoded)
			require.NoError(t, err)
			reparsed, err := decodeJSON(string(text))
			require.NoError(t, err)

			reencoded, err := c.FromJSON(reparsed, &tt.ty)
			require.NoError(t, err)
			if tt.name == "option none" {
				// Object(None) decodes to null, which re-encodes as Void.
				assert.Zero(t, xdr.Compare(xdr.ScValStatic(xdr.ScStaticScsVoid), reencoded))
				return
			}
			assert.Zero(t, xdr.Compare(tt.val, reencoded))
		})
	}
}

func TestRoundTripJSONThroughValue(t *testing.T) {
	// Property: to_json(from_json(j, t), t) is JSON-equal to j modulo the
	// documented coercions.
	c := testCodec()
	tests := []struct {
		name string
		json string
		ty   xdr.ScSpecTypeDef
	}{
		{"number", `7`, xdr.SpecTypeSimple(xdr.ScSpecTypeU32)},
		{"bool", `true`, xdr.SpecTypeSimple(xdr.ScSpecTypeBool)},
		{"i128 string", `"-170141183460469231731687303715884105728"`, xdr.SpecTypeSimple(xdr.ScSpecTypeI128)},
		{"bytes hex", `"00ff"`, xdr.SpecTypeSimple(xdr.ScSpecTypeBytes)},
		{"vec", `["a","b"]`, xdr.SpecTypeVec(xdr.SpecTypeSimple(xdr.ScSpecTypeSymbol))},
		{"union payload", `{"Named":"blue"}`, xdr.SpecTypeUdt("Color")},
		{"union plain", `"Red"`, xdr.SpecTypeUdt("Color")},
		{"tuple struct", `[1,2]`, xdr.SpecTypeUdt("Point")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := decodeJSON(tt.json)
			require.NoError(t, err)
			val, err := c.FromJSON(parsed, &tt.ty)
			require.NoError(t, err)
			decoded, err := c.ToJSON(val, &tt.ty)
			require.NoError(t, err)
			assert.Equal(t, tt.json, asJSON(t, decoded))
		})
	}
}
