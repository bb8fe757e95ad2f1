package syntax

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestFprintArith(t *testing.T) {
	x := valueOf(t, "a*b+c*d")

	var buf bytes.Buffer
	if err := Fprint(&buf, x); err != nil {
		t.Fatal(err)
	}
	want := `Arithmetic Expression: a * b + c * d
    Term: a * b
        Factor: a
            Variable: a
        Operator: *
        Factor: b
            Variable: b
    Operator: +
    Term: c * d
        Factor: c
            Variable: c
        Operator: *
        Factor: d
            Variable: d
`
	if got := buf.String(); got != want {
		t.Errorf("Fprint:\n%s\nwant:\n%s", got, want)
	}
}

func TestFprintEmptyFunction(t *testing.T) {
	f := parseSrc(t, "int f(){}")

	var buf bytes.Buffer
	if err := Fprint(&buf, f); err != nil {
		t.Fatal(err)
	}
	want := "Function Definition: int f () {....}\n" +
		"    Funtion Return Type: int\n" +
		"    Function Identifier: f\n" +
		"    Left Paren: (\n" +
		"    Function Parameters: \n" +
		"    Right Paren: )\n" +
		"    Left Curly: {\n" +
		"    Compound Statements: \n" +
		"    Right Curly: }\n"
	if got := buf.String(); got != want {
		t.Errorf("Fprint:\n%q\nwant:\n%q", got, want)
	}
}

func TestFprintTerminal(t *testing.T) {
	f := parseSrc(t, "int f(){}")
	var buf bytes.Buffer
	Fprint(&buf, f.Name)
	if got, want := buf.String(), "Identifier: f\n"; got != want {
		t.Errorf("Fprint(leaf) = %q, want %q", got, want)
	}
}

type errWriter struct{ n int }

func (w *errWriter) Write(p []byte) (int, error) {
	if w.n == 0 {
		return 0, errors.New("short write")
	}
	w.n--
	return len(p), nil
}

func TestFprintWriteError(t *testing.T) {
	f := parseSrc(t, "int f(){}")
	if err := Fprint(&errWriter{n: 2}, f); err == nil {
		t.Error("Fprint ignored a write error")
	}
}

func TestLexemes(t *testing.T) {
	f := parseSrc(t, "int foo(float x, int y){y=x+10;x=y/2.0;y=(int)x;return x;}")

	tests := []struct {
		node Node
		want string
	}{
		{f, "int foo (float x, int y) {....}"},
		{f.Params, "float x, int y"},
		{f.Params.Params[1], "int y"},
		{f.Body, "y = x + 10; x = y / 2.0; y = (int)x; return x; "},
		{f.Body.Stmts[2], "y = (int)x"},
		{f.Body.Stmts[3], "return x"},
		{f.Rbrace, "}"},
	}
	for _, tt := range tests {
		if got := Lexemes(tt.node); got != tt.want {
			t.Errorf("Lexemes(%T) = %q, want %q", tt.node, got, tt.want)
		}
	}
}

func TestFprintTokensGolden(t *testing.T) {
	src, err := os.ReadFile("testdata/foo.src")
	if err != nil {
		t.Fatal(err)
	}
	items, err := LexBytes("foo.src", src)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := FprintTokens(&buf, items); err != nil {
		t.Fatal(err)
	}
	got := buf.String()

	if os.Getenv("UPDATE_GOLDEN") != "" {
		if err := os.WriteFile("testdata/foo.tokens", []byte(got), 0644); err != nil {
			t.Fatal(err)
		}
		return
	}
	want, err := os.ReadFile("testdata/foo.tokens")
	if err != nil {
		t.Fatal(err)
	}
	if got != string(want) {
		t.Errorf("token table mismatch\n got:\n%s\nwant:\n%s", got, want)
	}
	// header, rule, one row per token
	if n := strings.Count(got, "\n"); n != len(items)-1+2 {
		t.Errorf("table has %d lines, want %d", n, len(items)-1+2)
	}
}

func TestFprintTokensEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := FprintTokens(&buf, []Item{{Tok: _EOF}}); err != nil {
		t.Fatal(err)
	}
	want := "TOKEN                   |LEXEME\n                        |\n"
	if got := buf.String(); got != want {
		t.Errorf("FprintTokens = %q, want %q", got, want)
	}
}

// ----------------------------------------------------------------------------
// JSON and YAML

type treeNode struct {
	Node     string     `json:"node" yaml:"node"`
	Token    string     `json:"token" yaml:"token"`
	Lexeme   string     `json:"lexeme" yaml:"lexeme"`
	Pos      string     `json:"pos" yaml:"pos"`
	Text     string     `json:"text" yaml:"text"`
	Children []treeNode `json:"children" yaml:"children"`
}

func (n treeNode) leaves() []string {
	if n.Node == "" {
		return []string{n.Lexeme}
	}
	var out []string
	for _, c := range n.Children {
		out = append(out, c.leaves()...)
	}
	return out
}

func checkTree(t *testing.T, root treeNode) {
	t.Helper()
	if root.Node != "Function Definition" {
		t.Errorf("root node = %q", root.Node)
	}
	if root.Pos != "test.c:1:1" {
		t.Errorf("root pos = %q", root.Pos)
	}
	if root.Text != "int f (float a) {....}" {
		t.Errorf("root text = %q", root.Text)
	}
	if len(root.Children) != 8 {
		t.Fatalf("root has %d children, want 8", len(root.Children))
	}
	if c := root.Children[0]; c.Token != "Type(Int)" || c.Lexeme != "int" {
		t.Errorf("first child = %+v", c)
	}

	want := "int f ( float a ) { return a * 2 - 1 ; }"
	if got := strings.Join(root.leaves(), " "); got != want {
		t.Errorf("leaves = %q, want %q", got, want)
	}

	// Body > Return Statement > Arithmetic Expression > Term'
	ret := root.Children[6].Children[0]
	arith := ret.Children[1]
	if arith.Node != "Arithmetic Expression" || len(arith.Children) != 2 {
		t.Fatalf("expression = %s with %d children", arith.Node, len(arith.Children))
	}
	if tail := arith.Children[1]; tail.Node != "Term'" || tail.Text != "- 1" {
		t.Errorf("tail = %s %q, want Term' \"- 1\"", tail.Node, tail.Text)
	}
}

const exportSrc = "int f(float a){ return a*2-1; }"

func TestFprintJSON(t *testing.T) {
	f := parseSrc(t, exportSrc)

	var buf bytes.Buffer
	if err := FprintJSON(&buf, f); err != nil {
		t.Fatal(err)
	}
	var root treeNode
	if err := json.Unmarshal(buf.Bytes(), &root); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	checkTree(t, root)
}

func TestFprintYAML(t *testing.T) {
	f := parseSrc(t, exportSrc)

	var buf bytes.Buffer
	if err := FprintYAML(&buf, f); err != nil {
		t.Fatal(err)
	}
	var root treeNode
	if err := yaml.Unmarshal(buf.Bytes(), &root); err != nil {
		t.Fatalf("invalid YAML: %v\n%s", err, buf.String())
	}
	checkTree(t, root)
}
