package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const pets = `[
	{"animal": "dog", "name": "Lucky", "age": 9},
	{"animal": "cat", "name": "snowball", "age": 3},
	{"animal": "dog", "name": "lucky", "age": 6},
	{"animal": "horse", "name": "ed", "age": 0},
	{"animal": "horse", "name": "", "age": 12}
]`

func writeInput(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "records.json")
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return strings.TrimSpace(out.String()), err
}

func TestCommands(t *testing.T) {
	input := writeInput(t, pets)
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"count"}, `5`},
		{[]string{"first"}, `{"age":9,"animal":"dog","name":"Lucky"}`},
		{[]string{"last"}, `{"age":12,"animal":"horse","name":""}`},
		{[]string{"sum", "age"}, `30`},
		{[]string{"avg", "age"}, `6`},
		{[]string{"avg", "age", "--exclude-zeros"}, `7.5`},
		{[]string{"max", "age"}, `12`},
		{[]string{"min", "age"}, `0`},
		{[]string{"sum", "name"}, `"NaN"`},
		{[]string{"count-by", "animal"}, `{"dog":2,"cat":1,"horse":2}`},
		{[]string{"count-by", "name", "--exclude-empty"}, `{"Lucky":1,"snowball":1,"lucky":1,"ed":1}`},
		{[]string{"unique", "animal"}, `["dog","cat","horse"]`},
		{[]string{"pluck", "age"}, `[9,3,6,0,12]`},
		{[]string{"group-by", "animal", "--exclude-empty"}, `{"dog":[{"age":9,"animal":"dog","name":"Lucky"},{"age":6,"animal":"dog","name":"lucky"}],"cat":[{"age":3,"animal":"cat","name":"snowball"}],"horse":[{"age":0,"animal":"horse","name":"ed"},{"age":12,"animal":"horse","name":""}]}`},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			got, err := run(t, "", append(tt.args, "--input", input)...)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Fatalf("output = %s; want %s", got, tt.want)
			}
		})
	}
}

func TestSortCommand(t *testing.T) {
	got, err := run(t, `[{"n":"b"},{"n":"C"},{"n":"a"}]`, "sort", "n")
	if err != nil {
		t.Fatal(err)
	}
	if got != `[{"n":"a"},{"n":"b"},{"n":"C"}]` {
		t.Fatalf("sort = %s", got)
	}
}

func TestPullCommand(t *testing.T) {
	data := `[{"foo":12},{"foo":3},{"foo":9}]`

	got, err := run(t, data, "pull", "foo", "12")
	if err != nil {
		t.Fatal(err)
	}
	if got != `{"pulled":{"foo":12},"remaining":[{"foo":3},{"foo":9}]}` {
		t.Fatalf("pull single = %s", got)
	}

	got, err = run(t, data, "pull", "foo", "12", "9", "10")
	if err != nil {
		t.Fatal(err)
	}
	if got != `{"pulled":[{"foo":12},{"foo":9}],"remaining":[{"foo":3}]}` {
		t.Fatalf("pull many = %s", got)
	}

	got, err = run(t, data, "pull", "foo", `"12"`)
	if err != nil {
		t.Fatal(err)
	}
	if got != `{"pulled":null,"remaining":[{"foo":12},{"foo":3},{"foo":9}]}` {
		t.Fatalf("pull string = %s", got)
	}
}

func TestSetCommand(t *testing.T) {
	got, err := run(t, `[{"a":1},{"a":2}]`, "set", "meta.seen", "true")
	if err != nil {
		t.Fatal(err)
	}
	if got != `[{"a":1,"meta":{"seen":true}},{"a":2,"meta":{"seen":true}}]` {
		t.Fatalf("set = %s", got)
	}
}

func TestEmptyInput(t *testing.T) {
	for args, want := range map[string]string{
		"count":   `0`,
		"first":   `null`,
		"max foo": `null`,
		"avg foo": `0`,
		"items":   `[]`,
	} {
		got, err := run(t, `{"not":"an array"}`, strings.Fields(args)...)
		if err != nil {
			t.Fatalf("%s: %v", args, err)
		}
		if got != want {
			t.Fatalf("%s = %s; want %s", args, got, want)
		}
	}
}

func TestIndentFromEnv(t *testing.T) {
	t.Setenv("COLLECT_INDENT", "true")
	got, err := run(t, `[{"a":1}]`, "items")
	if err != nil {
		t.Fatal(err)
	}
	if got != "[\n  {\n    \"a\": 1\n  }\n]" {
		t.Fatalf("indented output = %q", got)
	}
}

func TestErrors(t *testing.T) {
	if _, err := run(t, `[`, "count"); !errors.Is(err, ErrDecodeInput) {
		t.Fatalf("malformed input error = %v; want ErrDecodeInput", err)
	}
	missing := filepath.Join(t.TempDir(), "missing.json")
	if _, err := run(t, "", "count", "--input", missing); !errors.Is(err, ErrReadInput) {
		t.Fatalf("missing file error = %v; want ErrReadInput", err)
	}
	if _, err := run(t, "[]", "count", "--log-level", "loud"); !errors.Is(err, ErrInvalidLogLevel) {
		t.Fatalf("bad log level error = %v; want ErrInvalidLogLevel", err)
	}
	if _, err := run(t, "[]", "sum", ""); !errors.Is(err, ErrEmptyField) {
		t.Fatalf("empty field error = %v; want ErrEmptyField", err)
	}
	if _, err := run(t, "[]", "sum"); err == nil {
		t.Fatal("sum without a field should fail")
	}
}

func TestParseValue(t *testing.T) {
	if v := parseValue("12"); v != 12.0 {
		t.Fatalf("parseValue(12) = %#v; want 12.0", v)
	}
	if v := parseValue(`"12"`); v != "12" {
		t.Fatalf(`parseValue("12") = %#v; want "12"`, v)
	}
	if v := parseValue("dog"); v != "dog" {
		t.Fatalf("parseValue(dog) = %#v; want dog", v)
	}
}

func TestNonObjectRecords(t *testing.T) {
	got, err := run(t, `["foo","bar"]`, "items")
	if err != nil {
		t.Fatal(err)
	}
	if got != `["foo","bar"]` {
		t.Fatalf("items = %s", got)
	}

	got, err = run(t, `[{"a":1},"foo",null,[1]]`, "set", "b", "2")
	if err != nil {
		t.Fatal(err)
	}
	if got != `[{"a":1,"b":2},"foo",null,[1]]` {
		t.Fatalf("set = %s", got)
	}

	got, err = run(t, `[3,"x",{"n":4}]`, "count")
	if err != nil {
		t.Fatal(err)
	}
	if got != `3` {
		t.Fatalf("count = %s", got)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("stdin closed") }

func TestCompletionSkipsInput(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetIn(failingReader{})
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"completion", "bash"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("completion: %v", err)
	}
	if out.Len() == 0 {
		t.Fatal("completion printed nothing")
	}

	cmd = newRootCmd()
	cmd.SetIn(failingReader{})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"count"})
	if err := cmd.Execute(); !errors.Is(err, ErrReadInput) {
		t.Fatalf("count error = %v; want ErrReadInput", err)
	}
}
