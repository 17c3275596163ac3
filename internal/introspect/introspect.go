// Package introspect turns the scanner on itself: a fixed self-critique
// plus structural metrics parsed from the module's own source tree.
package introspect

import (
	"go/ast"
	"go/parser"
	"go/token"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"subtext/internal/domain"
)

var ownAssumptions = []string{
	"That language reveals structure (but structures also hide in silence).",
	"That keyword-matching approximates meaning (but meaning exceeds any word list).",
	"That power operates through narrative (but also through raw force, which narratives may obscure).",
	"That seeing is liberating (but seeing without action may deepen despair).",
	"That individual awakening matters (but systems change through collective, not just individual, action).",
	"That this framework is different from what it critiques (but every lens is also a frame).",
	"That the categories (frames, masks, spells, prisons) are sufficient (but reality exceeds any taxonomy).",
	"That the observer can be separate from the observed (but the act of seeing changes both).",
}

var ownBlindSpots = []string{
	"Non-linguistic power structures (violence, geography, biology).",
	"The positive functions of some 'frames' (shared meaning, coordination, belonging).",
	"Cultural contexts where these categories don't map cleanly.",
	"The danger of seeing everything as a conspiracy (pattern over-matching).",
	"The privilege embedded in having time and capacity to 'see' at all.",
	"Power dynamics within communities of 'the waking' themselves.",
	"The ways this tool could become its own kind of frame.",
}

var misuseVectors = []string{
	"Weaponizing analysis to manipulate rather than liberate.",
	"Using frame-detection to build more sophisticated frames.",
	"Creating an in-group of 'those who see' that becomes its own prison.",
	"Paralysis through analysis, seeing so much that action becomes impossible.",
	"Intellectual superiority, mistaking the map for the territory.",
	"Surveillance, using the tool to profile and control rather than to free.",
	"Nihilism, concluding that because all frames are constructed, nothing is real.",
}

var creatorBiases = []string{
	"Western philosophical tradition (individualism, rationalism, logocentrism).",
	"English-language centrism in signal detection.",
	"Implicit assumption that 'seeing' is good and 'not seeing' is bad.",
	"Technology-positive bias (building tools as the response to structural problems).",
	"Narrative bias, the tendency to see stories everywhere, including where there may be none.",
	"Liberation theology undertones, the assumption that freedom is the highest value.",
}

var evolutionNeeds = []string{
	"Multi-language signal detection (frames operate in every language).",
	"Integration with actual social network analysis (not just text).",
	"Feedback loops from users about what's missing.",
	"Cultural adaptation (different societies, different frames).",
	"Historical depth (frames change over time; static analysis misses drift).",
	"Embodied knowing (the body detects frames before the mind does).",
	"Connection to action (seeing alone is not enough).",
	"Protection mechanisms (for those who see and are in danger for it).",
}

// Examine turns the gaze inward: a fixed critique of the scanner's own
// assumptions and blind spots, plus structural metrics parsed from the Go
// source under sourceDir. Unreadable source never fails the examination;
// the metrics carry the error instead.
func Examine(sourceDir string) domain.SelfExamination {
	return domain.SelfExamination{
		ID:               domain.NewID(),
		AssumptionsFound: append([]string(nil), ownAssumptions...),
		BlindSpots:       append([]string(nil), ownBlindSpots...),
		MisuseVectors:    append([]string(nil), misuseVectors...),
		CreatorBiases:    append([]string(nil), creatorBiases...),
		EvolutionNeeds:   append([]string(nil), evolutionNeeds...),
		Metrics:          measure(sourceDir),
		Timestamp:        time.Now().UTC(),
	}
}

func measure(sourceDir string) domain.StructuralMetrics {
	metrics := domain.StructuralMetrics{SelfReferential: true}

	var files []string
	err := filepath.WalkDir(sourceDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if name == "vendor" || name == "testdata" || strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(path, ".go") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		metrics.Error = err.Error()
		return metrics
	}
	if len(files) == 0 {
		metrics.Error = "no Go source found under " + sourceDir
		return metrics
	}

	fset := token.NewFileSet()
	var (
		totalLines, numFuncs, numTypes, documented int
		complexitySum, maxComplexity               int
		maxComplexityFunc                          string
	)

	for _, path := range files {
		src, err := os.ReadFile(path)
		if err != nil {
			metrics.Error = err.Error()
			return metrics
		}
		file, err := parser.ParseFile(fset, path, src, parser.ParseComments)
		if err != nil {
			metrics.Error = err.Error()
			return metrics
		}

		totalLines += strings.Count(string(src), "\n") + 1

		for _, decl := range file.Decls {
			switch d := decl.(type) {
			case *ast.FuncDecl:
				numFuncs++
				if d.Doc != nil {
					documented++
				}
				c := complexity(d)
				complexitySum += c
				if c > maxComplexity {
					maxComplexity = c
					maxComplexityFunc = d.Name.Name
				}
			case *ast.GenDecl:
				if d.Tok == token.TYPE {
					numTypes += len(d.Specs)
				}
			}
		}
	}

	metrics.TotalFiles = len(files)
	metrics.TotalLines = totalLines
	metrics.NumFunctions = numFuncs
	metrics.NumTypes = numTypes
	if numFuncs > 0 {
		metrics.AvgComplexity = math.Round(float64(complexitySum)/float64(numFuncs)*100) / 100
		metrics.DocCoverage = math.Round(float64(documented)/float64(numFuncs)*1000) / 1000
	}
	metrics.MaxComplexity = maxComplexity
	metrics.MaxComplexityFunc = maxComplexityFunc
	return metrics
}

// complexity is a cyclomatic estimate: 1 plus one per branch point.
func complexity(fn *ast.FuncDecl) int {
	c := 1
	ast.Inspect(fn, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.IfStmt, *ast.ForStmt, *ast.RangeStmt, *ast.CaseClause, *ast.CommClause:
			c++
		case *ast.BinaryExpr:
			if n.Op == token.LAND || n.Op == token.LOR {
				c++
			}
		}
		return true
	})
	return c
}
