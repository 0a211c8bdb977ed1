package quiz

import (
	"math"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

const PassScore = 80

type Match struct {
	Score     int
	HTMLScore *int
	CSSScore  *int
}

func (m Match) Passed() bool { return m.Score >= PassScore }

// CodeMatch scores candidate markup against a target. Each part with a
// non-empty target is scored by token overlap; the overall score is the mean
// of the scored parts.
func CodeMatch(gotHTML, gotCSS, wantHTML, wantCSS string) Match {
	var m Match
	var parts []int

	if strings.TrimSpace(wantHTML) != "" {
		s := similarity(htmlTokens(gotHTML), htmlTokens(wantHTML))
		m.HTMLScore = &s
		parts = append(parts, s)
	}
	if strings.TrimSpace(wantCSS) != "" {
		s := similarity(cssTokens(gotCSS), cssTokens(wantCSS))
		m.CSSScore = &s
		parts = append(parts, s)
	}

	if len(parts) > 0 {
		sum := 0
		for _, p := range parts {
			sum += p
		}
		m.Score = int(math.Round(float64(sum) / float64(len(parts))))
	}
	return m
}

// similarity is the Jaccard index of two token sets scaled to 0-100.
func similarity(got, want map[string]bool) int {
	if len(got) == 0 && len(want) == 0 {
		return 100
	}
	inter := 0
	for t := range got {
		if want[t] {
			inter++
		}
	}
	union := len(got) + len(want) - inter
	return int(math.Round(100 * float64(inter) / float64(union)))
}

// htmlTokens collects element names with their nesting parent, classes and
// ids. Text content is ignored.
func htmlTokens(src string) map[string]bool {
	out := map[string]bool{}
	z := html.NewTokenizer(strings.NewReader(src))
	var stack []string

	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			return out
		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			parent := "root"
			if len(stack) > 0 {
				parent = stack[len(stack)-1]
			}
			out["tag:"+tok.Data] = true
			out["child:"+parent+">"+tok.Data] = true
			for _, a := range tok.Attr {
				switch a.Key {
				case "class":
					for _, c := range strings.Fields(a.Val) {
						out["class:"+c] = true
					}
				case "id":
					out["id:"+a.Val] = true
				}
			}
			if tt == html.StartTagToken && !voidElements[tok.Data] {
				stack = append(stack, tok.Data)
			}
		case html.EndTagToken:
			tok := z.Token()
			for i := len(stack) - 1; i >= 0; i-- {
				if stack[i] == tok.Data {
					stack = stack[:i]
					break
				}
			}
		}
	}
}

var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true, "hr": true,
	"img": true, "input": true, "link": true, "meta": true, "source": true, "track": true, "wbr": true,
}

var (
	cssComment = regexp.MustCompile(`(?s)/\*.*?\*/`)
	cssSpace   = regexp.MustCompile(`\s+`)
)

// cssTokens turns each declaration into "selector{property:value}" with
// whitespace and case normalised.
func cssTokens(src string) map[string]bool {
	out := map[string]bool{}
	src = cssComment.ReplaceAllString(src, "")

	for _, block := range strings.Split(src, "}") {
		sel, body, ok := strings.Cut(block, "{")
		if !ok {
			continue
		}
		sel = normCSS(sel)
		for _, decl := range strings.Split(body, ";") {
			prop, val, ok := strings.Cut(decl, ":")
			if !ok {
				continue
			}
			prop, val = normCSS(prop), normCSS(val)
			if prop == "" || val == "" {
				continue
			}
			out[sel+"{"+prop+":"+val+"}"] = true
		}
	}
	return out
}

func normCSS(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = cssSpace.ReplaceAllString(s, " ")
	s = strings.ReplaceAll(s, " ,", ",")
	return strings.ReplaceAll(s, ", ", ",")
}
