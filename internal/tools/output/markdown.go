package output

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/primrose-mcp/primrose-mcp-miro/internal/miro"
)

// emptyMarker is rendered in place of a table when a list result has no
// items, so agents never mistake an empty result for a formatting failure.
const emptyMarker = "_No items found._"

var titleCaser = cases.Title(language.English)

// renderMarkdown dispatches on the concrete result type. Every entity the
// API returns gets a purpose-built table or field block; anything else goes
// through the generic reflection-free fallback.
func (f *Formatter) renderMarkdown(v any, label string) (string, error) {
	switch t := v.(type) {
	case *miro.Page[miro.Board]:
		return renderPage(label, t,
			[]string{"ID", "Name", "Description", "Link"},
			func(b miro.Board) []string {
				return []string{b.ID, b.Name, b.Description, b.ViewLink}
			}), nil
	case *miro.Page[miro.BoardMember]:
		return renderPage(label, t,
			[]string{"ID", "Name", "Email", "Role"},
			func(m miro.BoardMember) []string {
				return []string{m.ID, m.Name, m.Email, m.Role}
			}), nil
	case *miro.Page[miro.Item]:
		return renderPage(label, t,
			[]string{"ID", "Type", "Content", "Position"},
			func(i miro.Item) []string {
				return []string{i.ID, i.Type, itemContent(i.Data), formatPosition(i.Position)}
			}), nil
	case *miro.Page[miro.Tag]:
		return renderPage(label, t,
			[]string{"ID", "Title", "Color"},
			func(tag miro.Tag) []string {
				return []string{tag.ID, tag.Title, tag.FillColor}
			}), nil
	case *miro.Page[miro.Connector]:
		return renderPage(label, t,
			[]string{"ID", "Shape", "Start", "End", "Caption"},
			connectorRow), nil
	case *miro.Page[miro.Group]:
		return renderPage(label, t,
			[]string{"ID", "Item Count", "Items"},
			groupRow), nil
	case []miro.Tag:
		page := &miro.Page[miro.Tag]{Data: t, Size: len(t)}
		return renderPage(label, page,
			[]string{"ID", "Title", "Color"},
			func(tag miro.Tag) []string {
				return []string{tag.ID, tag.Title, tag.FillColor}
			}), nil
	case *miro.Board:
		return renderBoard(label, t), nil
	case *miro.BoardMember:
		return renderFields(headingFor(label, t.Name),
			field{"ID", t.ID},
			field{"Name", t.Name},
			field{"Email", t.Email},
			field{"Role", t.Role},
		), nil
	case *miro.Item:
		return renderItem(label, t), nil
	case *miro.Tag:
		return renderFields(headingFor(label, t.Title),
			field{"ID", t.ID},
			field{"Title", t.Title},
			field{"Color", t.FillColor},
		), nil
	case *miro.Connector:
		return renderConnector(label, t), nil
	case *miro.Group:
		return renderFields(headingFor(label, t.ID),
			field{"ID", t.ID},
			field{"Item Count", fmt.Sprintf("%d", len(t.Data.Items))},
			field{"Items", strings.Join(t.Data.Items, ", ")},
		), nil
	default:
		return renderGeneric(v, label)
	}
}

// renderPage renders one page of results as a heading, a table, and an
// optional continuation hint. The heading reports how many items are shown
// against the total when the API provided one.
func renderPage[T any](label string, page *miro.Page[T], headers []string, row func(T) []string) string {
	var b strings.Builder

	shown := len(page.Data)
	if page.Total > 0 {
		fmt.Fprintf(&b, "## %s (showing %d of %d)\n\n", label, shown, page.Total)
	} else {
		fmt.Fprintf(&b, "## %s (%d)\n\n", label, shown)
	}

	if shown == 0 {
		b.WriteString(emptyMarker)
		return b.String()
	}

	writeTableHeader(&b, headers)
	for _, item := range page.Data {
		writeTableRow(&b, row(item))
	}

	if page.HasMore() {
		fmt.Fprintf(&b, "\nMore results are available. Pass cursor `%s` to continue.", page.Cursor)
	}

	return b.String()
}

func writeTableHeader(b *strings.Builder, headers []string) {
	b.WriteString("| " + strings.Join(headers, " | ") + " |\n")
	b.WriteString("|" + strings.Repeat(" --- |", len(headers)) + "\n")
}

func writeTableRow(b *strings.Builder, cells []string) {
	escaped := make([]string, len(cells))
	for i, c := range cells {
		escaped[i] = cell(c)
	}
	b.WriteString("| " + strings.Join(escaped, " | ") + " |\n")
}

// cell sanitizes a value for use inside a markdown table: pipes and
// newlines would break the table grammar, and very long values would
// drown the rest of the row.
func cell(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.TrimSpace(s)
	if len(s) > maxCellChars {
		s = cutOnRuneBoundary(s, maxCellChars-3) + "..."
	}
	return s
}

func connectorRow(c miro.Connector) []string {
	caption := ""
	if len(c.Captions) > 0 {
		caption = c.Captions[0].Content
	}
	return []string{c.ID, c.Shape, endpointItem(c.StartItem), endpointItem(c.EndItem), caption}
}

func groupRow(g miro.Group) []string {
	return []string{g.ID, fmt.Sprintf("%d", len(g.Data.Items)), strings.Join(g.Data.Items, ", ")}
}

func endpointItem(e *miro.ConnectorEndpoint) string {
	if e == nil {
		return ""
	}
	return e.Item
}

// itemContent extracts the human-readable text from an item's type-specific
// data block. Different item types carry it under different keys.
func itemContent(data map[string]any) string {
	for _, key := range []string{"content", "title", "url"} {
		if v, ok := data[key]; ok {
			if s, ok := v.(string); ok && s != "" {
				return s
			}
		}
	}
	return ""
}

func formatPosition(p *miro.Position) string {
	if p == nil {
		return ""
	}
	return fmt.Sprintf("(%.1f, %.1f)", p.X, p.Y)
}

func formatGeometry(g *miro.Geometry) string {
	if g == nil || (g.Width == 0 && g.Height == 0) {
		return ""
	}
	return fmt.Sprintf("%.1f x %.1f", g.Width, g.Height)
}

// field is one labeled line in a single-object block. Fields with empty
// values are skipped when rendering.
type field struct {
	name  string
	value string
}

func headingFor(label, name string) string {
	if name == "" {
		return "## " + label
	}
	return fmt.Sprintf("## %s: %s", label, name)
}

func renderFields(heading string, fields ...field) string {
	var b strings.Builder
	b.WriteString(heading + "\n")
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		fmt.Fprintf(&b, "\n- **%s:** %s", f.name, f.value)
	}
	return b.String()
}

func renderBoard(label string, board *miro.Board) string {
	fields := []field{
		{"ID", board.ID},
		{"Name", board.Name},
		{"Description", board.Description},
		{"Link", board.ViewLink},
		{"Created", board.CreatedAt},
		{"Modified", board.ModifiedAt},
	}
	if board.Owner != nil {
		fields = append(fields, field{"Owner", board.Owner.Name})
	}
	if board.Team != nil {
		fields = append(fields, field{"Team", board.Team.Name})
	}
	return renderFields(headingFor(label, board.Name), fields...)
}

func renderItem(label string, item *miro.Item) string {
	fields := []field{
		{"ID", item.ID},
		{"Type", item.Type},
		{"Content", itemContent(item.Data)},
		{"Position", formatPosition(item.Position)},
		{"Size", formatGeometry(item.Geometry)},
	}
	if item.Parent != nil {
		fields = append(fields, field{"Parent", item.Parent.ID})
	}
	fields = append(fields,
		field{"Created", item.CreatedAt},
		field{"Modified", item.ModifiedAt},
	)
	return renderFields(headingFor(label, item.ID), fields...)
}

func renderConnector(label string, c *miro.Connector) string {
	caption := ""
	if len(c.Captions) > 0 {
		caption = c.Captions[0].Content
	}
	return renderFields(headingFor(label, c.ID),
		field{"ID", c.ID},
		field{"Shape", c.Shape},
		field{"Start Item", endpointItem(c.StartItem)},
		field{"End Item", endpointItem(c.EndItem)},
		field{"Caption", caption},
	)
}

// renderGeneric handles values with no dedicated renderer by round-tripping
// through JSON. Slices of objects become a table over their most common
// keys; single objects become a field block.
func renderGeneric(v any, label string) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encoding response: %w", err)
	}

	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}

	switch d := decoded.(type) {
	case []any:
		return renderGenericList(d, label), nil
	case map[string]any:
		return renderGenericObject(d, label), nil
	default:
		return fmt.Sprintf("## %s\n\n%v", label, d), nil
	}
}

func renderGenericList(items []any, label string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s (%d)\n\n", label, len(items))

	if len(items) == 0 {
		b.WriteString(emptyMarker)
		return b.String()
	}

	keys := genericColumns(items)
	if len(keys) == 0 {
		for _, item := range items {
			fmt.Fprintf(&b, "- %v\n", item)
		}
		return b.String()
	}

	headers := make([]string, len(keys))
	for i, k := range keys {
		headers[i] = titleCaser.String(k)
	}
	writeTableHeader(&b, headers)
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		row := make([]string, len(keys))
		for i, k := range keys {
			row[i] = scalarString(obj[k])
		}
		writeTableRow(&b, row)
	}
	return b.String()
}

// genericColumns picks up to five columns for an untyped list: id first when
// present, then the remaining keys of the first object in sorted order.
func genericColumns(items []any) []string {
	first, ok := items[0].(map[string]any)
	if !ok {
		return nil
	}

	keys := make([]string, 0, len(first))
	for k := range first {
		if k != "id" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	if _, hasID := first["id"]; hasID {
		keys = append([]string{"id"}, keys...)
	}
	if len(keys) > 5 {
		keys = keys[:5]
	}
	return keys
}

func renderGenericObject(obj map[string]any, label string) string {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := make([]field, 0, len(keys))
	for _, k := range keys {
		fields = append(fields, field{titleCaser.String(k), scalarString(obj[k])})
	}
	return renderFields("## "+label, fields...)
}

// scalarString flattens a decoded JSON value into a single table cell.
// Nested structures are re-encoded compactly rather than dumped via %v.
func scalarString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t))
		}
		return fmt.Sprintf("%g", t)
	case bool:
		return fmt.Sprintf("%t", t)
	default:
		raw, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprintf("%v", t)
		}
		return string(raw)
	}
}
