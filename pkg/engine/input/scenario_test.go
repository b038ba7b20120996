package input

import (
	"strings"
	"testing"

	"derelict/pkg/engine/world"
)

const sampleScript = `# relight life support, then run for the airlock
3 repair 4,4
3 move 4,5
12 seal 21,4

40 shield 17,3
`

func TestParse_ValidScript(t *testing.T) {
	s, err := Parse(strings.NewReader(sampleScript))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if s.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", s.Len())
	}

	turn3 := s.At(3)
	if len(turn3) != 2 {
		t.Fatalf("At(3) returned %d actions, want 2", len(turn3))
	}
	want := Action{Turn: 3, Verb: "repair", Pos: world.Point{X: 4, Y: 4}, HasPos: true}
	if turn3[0] != want {
		t.Errorf("At(3)[0] = %+v, want %+v", turn3[0], want)
	}
	if turn3[1].Verb != "move" {
		t.Errorf("At(3)[1].Verb = %q, want move", turn3[1].Verb)
	}

	if got := s.At(5); got != nil {
		t.Errorf("At(5) = %v, want none", got)
	}
}

func TestParse_BadLinesNameTheLine(t *testing.T) {
	cases := []struct {
		name   string
		script string
		want   string
	}{
		{"too many fields", "1 seal 2,2 junk\n", "line 1"},
		{"bad turn", "zero seal 2,2\n", "line 1"},
		{"negative turn", "-4 seal 2,2\n", "line 1"},
		{"bad position", "1 seal 2;2\n", "line 1"},
		{"backwards turns", "9 seal 2,2\n4 repair 1,1\n", "line 2"},
		{"bare verb line", "# fine\n\nseal\n", "line 3"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tc.script))
			if err == nil {
				t.Fatal("Parse() error = nil, want error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not name %q", err, tc.want)
			}
		})
	}
}

func TestParse_VerbsAreLowercased(t *testing.T) {
	s, err := Parse(strings.NewReader("2 SEAL 1,1\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got := s.At(2)[0].Verb; got != "seal" {
		t.Errorf("Verb = %q, want seal", got)
	}
}

func TestScript_NilIsEmpty(t *testing.T) {
	var s *Script
	if s.Len() != 0 {
		t.Errorf("nil script Len() = %d, want 0", s.Len())
	}
	if got := s.At(1); got != nil {
		t.Errorf("nil script At(1) = %v, want nil", got)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load("does/not/exist.txt"); err == nil {
		t.Error("Load() error = nil, want error")
	}
}
