package goquery

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/kaptinlin/jsonrepair"
)

// ldJobPosting is the subset of a schema.org JobPosting used for enrichment.
type ldJobPosting struct {
	Description        string         `json:"description"`
	HiringOrganization ldOrganization `json:"hiringOrganization"`
}

// ldOrganization is the subset of a schema.org Organization.
type ldOrganization struct {
	Name   string    `json:"name"`
	URL    string    `json:"url"`
	SameAs ldStrings `json:"sameAs"`
	Logo   ldImage   `json:"logo"`
}

// UnmarshalJSON accepts an Organization object or a bare name. Fields of an
// unexpected shape are left empty instead of failing the enclosing node.
func (o *ldOrganization) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*o = ldOrganization{Name: name}
		return nil
	}
	type plain ldOrganization
	var p plain
	_ = json.Unmarshal(data, &p)
	*o = ldOrganization(p)
	return nil
}

// ldStrings accepts either a single string or a list of strings.
type ldStrings []string

func (s *ldStrings) UnmarshalJSON(data []byte) error {
	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		*s = ldStrings{one}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return nil
	}
	*s = many
	return nil
}

// ldImage accepts either a URL string or an ImageObject.
type ldImage string

func (i *ldImage) UnmarshalJSON(data []byte) error {
	var url string
	if err := json.Unmarshal(data, &url); err == nil {
		*i = ldImage(url)
		return nil
	}
	var obj struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil
	}
	*i = ldImage(obj.URL)
	return nil
}

// findLD decodes the first JSON-LD node of the given @type into v.
// Malformed blocks are repaired before decoding; blocks that cannot be
// repaired are skipped. Returns false if no node matched.
func findLD(doc *goquery.Document, typ string, v any) bool {
	found := false
	doc.Find("script[type='application/ld+json']").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		raw := strings.TrimSpace(s.Text())
		if raw == "" {
			return true
		}

		var data any
		if err := json.Unmarshal([]byte(raw), &data); err != nil {
			repaired, err := jsonrepair.JSONRepair(raw)
			if err != nil {
				return true
			}
			if err := json.Unmarshal([]byte(repaired), &data); err != nil {
				return true
			}
		}

		node := findLDNode(data, typ)
		if node == nil {
			return true
		}
		b, err := json.Marshal(node)
		if err != nil {
			return true
		}
		if err := json.Unmarshal(b, v); err != nil {
			return true
		}
		found = true
		return false
	})
	return found
}

// findLDNode walks decoded JSON-LD (objects, arrays, and @graph containers)
// and returns the first object whose @type matches.
func findLDNode(data any, typ string) map[string]any {
	switch v := data.(type) {
	case []any:
		for _, item := range v {
			if node := findLDNode(item, typ); node != nil {
				return node
			}
		}
	case map[string]any:
		if hasLDType(v["@type"], typ) {
			return v
		}
		if graph, ok := v["@graph"]; ok {
			return findLDNode(graph, typ)
		}
	}
	return nil
}

func hasLDType(v any, typ string) bool {
	switch t := v.(type) {
	case string:
		return t == typ
	case []any:
		for _, item := range t {
			if s, ok := item.(string); ok && s == typ {
				return true
			}
		}
	}
	return false
}
