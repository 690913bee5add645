package main

import (
	"strings"
	"testing"

	"xroad/internal/schema"
)

func TestCamel(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"clord_id", "ClordID"},
		{"bb_figi", "BBFigi"},
		{"isin", "ISIN"},
		{"realized_pnl", "RealizedPnL"},
		{"exch_order_id", "ExchOrderID"},
		{"tick_size", "TickSize"},
	}

	for _, tc := range testCases {
		if got := camel(tc.input, initialisms); got != tc.expected {
			t.Fatalf("camel mismatch! should be %s but got %s", tc.expected, got)
		}
	}

	if got := camel("fix_session", nil); got != "FixSession" {
		t.Fatalf("kind camel mismatch! got %s", got)
	}
}

func TestGoType(t *testing.T) {
	s := schema.Default().MustSchema(schema.KindOrder)
	testCases := map[string]string{
		"qty":        "int64",
		"price":      "float64",
		"clord_id":   "string",
		"side":       "enum.Side",
		"ord_type":   "enum.OrdType",
		"fix_status": "enum.OrderFixStatus",
		"instr":      "schema.ObjectRef",
		"flags":      "uint32",
	}

	for name, expected := range testCases {
		f, ok := s.Field(name)
		if !ok {
			t.Fatalf("order has no field %s", name)
		}
		if got := goType(f); got != expected {
			t.Fatalf("go type of %s mismatch! should be %s but got %s", name, expected, got)
		}
	}
}

func TestRender(t *testing.T) {
	out, err := render("object", "fields_gen.go", schema.Default(), []schema.RecordKind{schema.KindQuote})
	if err != nil {
		t.Fatalf("render, err: %+v", err)
	}

	src := string(out)
	for _, want := range []string{
		"// Code generated by objgen; DO NOT EDIT.",
		"package object",
		`QuoteBidPrice = NewField[float64](schema.KindQuote, "bid_price")`,
		`QuoteInstr    = NewField[schema.ObjectRef](schema.KindQuote, "instr")`,
	} {
		if !strings.Contains(src, want) {
			t.Fatalf("render output misses %q:\n%s", want, src)
		}
	}
}

func TestRenderAllKinds(t *testing.T) {
	reg := schema.Default()
	out, err := render("object", "fields_gen.go", reg, reg.Kinds())
	if err != nil {
		t.Fatalf("render, err: %+v", err)
	}

	src := string(out)
	for _, kind := range reg.Kinds() {
		s := reg.MustSchema(kind)
		header := "// " + s.Name + " fields\n"
		if has := strings.Contains(src, header); has != (len(s.Fields) != 0) {
			t.Fatalf("block of %s mismatch! fields %d, rendered %v", s.Name, len(s.Fields), has)
		}
	}
}

func TestRenderNameClash(t *testing.T) {
	reg := schema.Default()
	if _, err := render("object", "fields_gen.go", reg, []schema.RecordKind{schema.KindQuote, schema.KindQuote}); err == nil {
		t.Fatal("render twice the same kind should fail")
	}

	reserved = append(reserved, "QuoteBidPrice")
	defer func() { reserved = reserved[:len(reserved)-1] }()
	if _, err := render("object", "fields_gen.go", reg, []schema.RecordKind{schema.KindQuote}); err == nil {
		t.Fatal("render onto a reserved name should fail")
	}
}
