package huffmantext

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func makeTestTree(t *testing.T) *Tree {
	t.Helper()
	tree, err := BuildTree(Frequencies{'a': 5, 'b': 9, 'c': 12, 'd': 13, 'e': 16, 'f': 45})
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}
	return tree
}

func TestEncoder(t *testing.T) {
	tree := makeTestTree(t)

	expectDump := strings.Join([]string{
		"CodeTable{\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 4\n",
		"\tLookup(97) = \"1100\"\n",
		"\tLookup(98) = \"1101\"\n",
		"\tLookup(99) = \"100\"\n",
		"\tLookup(100) = \"101\"\n",
		"\tLookup(101) = \"111\"\n",
		"\tLookup(102) = \"0\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = tree.Codes().Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}

func TestCodeTable_WriteTo(t *testing.T) {
	tree := makeTestTree(t)

	expectTable := strings.Join([]string{
		"f: 0\n",
		"c: 100\n",
		"d: 101\n",
		"a: 1100\n",
		"b: 1101\n",
		"e: 111\n",
	}, "")

	var buf strings.Builder
	_, _ = tree.Codes().WriteTo(&buf)
	actualTable := buf.String()

	if expectTable != actualTable {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectTable, actualTable)
	}
}

func TestCodeTable_EncodedSize(t *testing.T) {
	tree := makeTestTree(t)

	size, err := tree.Codes().EncodedSize(Frequencies{'a': 5, 'b': 9, 'c': 12, 'd': 13, 'e': 16, 'f': 45})
	if err != nil {
		t.Fatalf("EncodedSize failed: %v", err)
	}
	if size != 224 {
		t.Errorf("wrong size: expected 224, got %d", size)
	}

	_, err = tree.Codes().EncodedSize(Frequencies{'z': 1})
	if !errors.Is(err, ErrUnknownSymbol) {
		t.Errorf("expected ErrUnknownSymbol, got %v", err)
	}
}

func TestCodeTable_MarshalJSON(t *testing.T) {
	tree, err := BuildTreeFromText("aabbbcc")
	if err != nil {
		t.Fatalf("BuildTreeFromText failed: %v", err)
	}

	raw, err := tree.Codes().MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON failed: %v", err)
	}
	expectJSON := `{"a":"10","b":"0","c":"11"}`
	if actualJSON := string(raw); expectJSON != actualJSON {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectJSON, actualJSON)
	}
}

func TestFindCode(t *testing.T) {
	tree := makeTestTree(t)
	root := tree.Root()

	for _, symbol := range tree.Codes().Symbols() {
		t.Run(symbol.String(), func(t *testing.T) {
			expect, _ := tree.Codes().Lookup(symbol)
			actual, found := FindCode(root, symbol)
			if !found {
				t.Fatalf("symbol %v not found", symbol)
			}
			if diff := cmp.Diff(expect, actual); diff != "" {
				t.Errorf("wrong code (-want +got):\n%s", diff)
			}
		})
	}

	if hc, found := FindCode(root, 'z'); found {
		t.Errorf("expected 'z' to be missing, got %s", hc)
	}

	single := NewLeaf('q', 3)
	if hc, found := FindCode(single, 'q'); !found || hc.Digits() != "0" {
		t.Errorf("single leaf: expected \"0\", got %s (found=%v)", hc, found)
	}
}

func TestEncode(t *testing.T) {
	tree, err := BuildTreeFromText("aabbbcc")
	if err != nil {
		t.Fatalf("BuildTreeFromText failed: %v", err)
	}

	type testRow struct {
		name    string
		text    string
		expect  string
		wantErr bool
		offset  int
	}

	testData := [...]testRow{
		{name: "empty", text: "", expect: ""},
		{name: "source", text: "aabbbcc", expect: "10100001111"},
		{name: "reordered", text: "cab", expect: "11100"},
		{name: "unknown", text: "abz", wantErr: true, offset: 2},
		{name: "unknown-first", text: "\x00", wantErr: true, offset: 0},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			actual, err := tree.EncodeString(row.text)
			if row.wantErr {
				var use *UnknownSymbolError
				if !errors.As(err, &use) {
					t.Fatalf("expected *UnknownSymbolError, got %v", err)
				}
				if use.Offset != row.offset {
					t.Errorf("expected offset %d, got %d", row.offset, use.Offset)
				}
				if !errors.Is(err, ErrUnknownSymbol) {
					t.Errorf("expected errors.Is(err, ErrUnknownSymbol)")
				}
				return
			}
			if err != nil {
				t.Fatalf("EncodeString failed: %v", err)
			}
			if actual != row.expect {
				t.Errorf("expected %q, got %q", row.expect, actual)
			}

			bits, err := Encode(tree.Root(), row.text)
			if err != nil {
				t.Fatalf("Encode failed: %v", err)
			}
			if bits.Digits() != row.expect {
				t.Errorf("Encode: expected %q, got %q", row.expect, bits.Digits())
			}
		})
	}
}
