package format

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/cristianoliveira/gridsettings/internal/setting"
	"github.com/samber/lo"
)

// TableFormatter writes results as bordered tables.
type TableFormatter struct {
	border      lipgloss.Border
	headerStyle lipgloss.Style
}

// NewTableFormatter creates a TableFormatter with the default styles.
func NewTableFormatter() *TableFormatter {
	return &TableFormatter{
		border:      lipgloss.NormalBorder(),
		headerStyle: lipgloss.NewStyle().Bold(true),
	}
}

func (f *TableFormatter) FormatLayouts(layouts []setting.GridLayoutEntity, writer io.Writer) error {
	rows := lo.Map(layouts, func(l setting.GridLayoutEntity, i int) []string {
		return []string{strconv.Itoa(i), l.Ty.String()}
	})
	return f.render(writer, []string{"#", "LAYOUT"}, rows)
}

func (f *TableFormatter) FormatParams(params setting.SettingChangesetParams, writer io.Writer) error {
	rows := [][]string{
		{"grid_id", params.GridID},
		{"layout_type", params.LayoutType.String()},
		{"filter_changed", strconv.FormatBool(params.IsFilterChanged())},
		{"group_changed", strconv.FormatBool(params.IsGroupChanged())},
	}
	if p := params.InsertFilter; p != nil {
		id := lo.Ternary(p.FilterID == nil, "(new)", lo.FromPtr(p.FilterID))
		rows = append(rows, []string{"insert_filter", fmt.Sprintf("field=%s type=%s filter=%s condition=%d content=%q",
			p.FieldID, p.FieldType, id, p.Condition, p.Content)})
	}
	if p := params.DeleteFilter; p != nil {
		rows = append(rows, []string{"delete_filter", fmt.Sprintf("field=%s type=%s filter=%s", p.FieldID, p.FieldType, p.FilterID)})
	}
	if p := params.InsertGroup; p != nil {
		rows = append(rows, []string{"insert_group", fmt.Sprintf("field=%s type=%s", p.FieldID, p.FieldType)})
	}
	if p := params.DeleteGroup; p != nil {
		rows = append(rows, []string{"delete_group", fmt.Sprintf("field=%s type=%s group=%s", p.FieldID, p.FieldType, p.GroupID)})
	}
	return f.render(writer, []string{"SETTING", "VALUE"}, rows)
}

func (f *TableFormatter) FormatSnapshot(snapshot setting.GridSetting, writer io.Writer) error {
	rows := make([][]string, 0, len(snapshot.Layouts)+snapshot.Filters.Len()+snapshot.GroupConfigurations.Len())
	for _, l := range snapshot.Layouts {
		marker := ""
		if l.Ty == snapshot.LayoutType {
			marker = "active"
		}
		rows = append(rows, []string{"layout", l.Ty.String(), marker})
	}
	for _, flt := range snapshot.Filters.Items {
		rows = append(rows, []string{"filter", flt.ID, fmt.Sprintf("field=%s type=%s condition=%d content=%q",
			flt.FieldID, flt.FieldType, flt.Condition, flt.Content)})
	}
	for _, grp := range snapshot.GroupConfigurations.Items {
		rows = append(rows, []string{"group", grp.ID, fmt.Sprintf("field=%s type=%s", grp.FieldID, grp.FieldType)})
	}
	return f.render(writer, []string{"KIND", "ID", "DETAILS"}, rows)
}

func (f *TableFormatter) render(writer io.Writer, headers []string, rows [][]string) error {
	t := table.New().
		Border(f.border).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return f.headerStyle
			}
			return lipgloss.NewStyle()
		})
	if _, err := fmt.Fprintln(writer, t.Render()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
