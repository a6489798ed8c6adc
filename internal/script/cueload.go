package script

import (
	"fmt"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/load"
)

// cueDef is the decode target for one CUE script declaration.
type cueDef struct {
	Name           string            `json:"name"`
	Direction      string            `json:"direction"`
	Abugida        bool              `json:"abugida"`
	DefaultVowels  []string          `json:"default_vowels"`
	VowelInsertion map[string]string `json:"vowel_insertion"`
	Fallback       map[string]string `json:"fallback"`
}

// LoadCUEDir loads script definitions from the CUE files in dir and returns
// them ready for registration.
//
// The files must evaluate to a top-level list field:
//
//	scripts: [
//		{
//			name:      "Cyrillic"
//			direction: "ltr"
//			fallback: {a: "а", b: "б"}
//		},
//	]
//
// Fallback keys must be single runes. Direction defaults to "ltr".
func LoadCUEDir(dir string) ([]*ReverseScript, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("script definitions directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("script definitions path %s is not a directory", dir)
	}

	cueFiles, err := findCUEFiles(dir)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dir, err)
	}
	if len(cueFiles) == 0 {
		return nil, fmt.Errorf("no CUE files found in %s", dir)
	}

	ctx := cuecontext.New()
	instances := load.Instances([]string{"."}, &load.Config{Dir: dir})
	if len(instances) == 0 {
		return nil, fmt.Errorf("no CUE instances loaded from %s", dir)
	}
	inst := instances[0]
	if inst.Err != nil {
		return nil, fmt.Errorf("loading CUE files: %w", inst.Err)
	}

	value := ctx.BuildInstance(inst)
	if err := value.Err(); err != nil {
		return nil, fmt.Errorf("building CUE value: %w", err)
	}

	scriptsVal := value.LookupPath(cue.ParsePath("scripts"))
	if !scriptsVal.Exists() {
		return nil, fmt.Errorf("no scripts field found in %s", dir)
	}

	iter, err := scriptsVal.List()
	if err != nil {
		return nil, fmt.Errorf("scripts field is not a list: %w", err)
	}

	var scripts []*ReverseScript
	for iter.Next() {
		var def cueDef
		if err := iter.Value().Decode(&def); err != nil {
			return nil, fmt.Errorf("decoding script definition: %w", err)
		}
		s, err := fromCUEDef(def)
		if err != nil {
			return nil, err
		}
		scripts = append(scripts, s)
	}
	if len(scripts) == 0 {
		return nil, fmt.Errorf("scripts list in %s is empty", dir)
	}

	return scripts, nil
}

func fromCUEDef(def cueDef) (*ReverseScript, error) {
	s := &ReverseScript{
		Name:          def.Name,
		Direction:     Direction(def.Direction),
		Abugida:       def.Abugida,
		DefaultVowels: def.DefaultVowels,
	}
	if def.Direction == "" {
		s.Direction = LeftToRight
	}

	if len(def.VowelInsertion) > 0 {
		s.VowelInsertion = make(map[PositionClass]string, len(def.VowelInsertion))
		for class, vowel := range def.VowelInsertion {
			s.VowelInsertion[PositionClass(class)] = vowel
		}
	}

	if len(def.Fallback) > 0 {
		s.FallbackMap = make(map[rune]string, len(def.Fallback))
		for from, to := range def.Fallback {
			runes := []rune(from)
			if len(runes) != 1 {
				return nil, fmt.Errorf("script %s: fallback key %q must be a single rune", def.Name, from)
			}
			s.FallbackMap[runes[0]] = to
		}
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// findCUEFiles walks the directory and returns all .cue file paths.
func findCUEFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && filepath.Ext(path) == ".cue" {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}
