package panel

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/atomicstack/groupme-info/internal/format/table"
	"github.com/atomicstack/groupme-info/internal/store"
)

const dateLayout = "Jan 2, 2006"

func renderBuiltIns(ctx Context) []string {
	if len(ctx.BuiltIns) == 0 {
		return []string{"(no built-in commands)"}
	}
	rows := make([][]string, 0, len(ctx.BuiltIns))
	for _, b := range ctx.BuiltIns {
		marker := ""
		if b.Restricted {
			marker = "mod"
		}
		rows = append(rows, []string{"!" + b.Name, marker, b.Help})
	}
	return table.Format(rows, nil)
}

func renderMods(ctx Context) []string {
	if len(ctx.Mods) == 0 {
		return []string{"(no moderators)"}
	}
	lines := make([]string, 0, len(ctx.Mods))
	for _, m := range ctx.Mods {
		lines = append(lines, m.Username)
	}
	return lines
}

func renderGroup(ctx Context) []string {
	g := ctx.Group
	if !g.Found {
		return []string{
			"This group has not been initialised yet.",
			"Send !initialize in the chat to register it.",
		}
	}
	rows := [][]string{
		{"Name", g.Name},
		{"Created", formatDate(g.Created)},
		{"Last updated", formatDate(g.LastUpdated)},
		{"Members", strconv.Itoa(g.Members)},
		{"Messages", strconv.Itoa(g.Messages)},
		{"Likes", strconv.Itoa(g.Likes)},
	}
	lines := table.Format(rows, nil)
	if g.MostLiked.Text != "" {
		lines = append(lines, "", fmt.Sprintf("Most liked (%d likes):", g.MostLiked.Likes), "  "+g.MostLiked.Text)
	}
	return lines
}

func renderStats(ctx Context) []string {
	if len(ctx.Members) == 0 {
		return []string{"(no member statistics yet)"}
	}
	members := append([]store.Member(nil), ctx.Members...)
	sort.SliceStable(members, func(i, j int) bool {
		return members[i].Likes > members[j].Likes
	})
	rows := make([][]string, 0, len(members)+1)
	rows = append(rows, []string{"member", "messages", "likes", "given", "ratio"})
	for _, m := range members {
		rows = append(rows, []string{
			m.Username,
			strconv.Itoa(m.Messages),
			strconv.Itoa(m.Likes),
			strconv.Itoa(m.LikesGiven),
			strconv.FormatFloat(LikeRatio(m), 'f', 2, 64),
		})
	}
	return table.Format(rows, []table.Alignment{
		table.AlignLeft, table.AlignRight, table.AlignRight, table.AlignRight, table.AlignRight,
	})
}

// LikeRatio is likes received per message, rounded to two places. Members
// without messages score zero.
func LikeRatio(m store.Member) float64 {
	if m.Messages == 0 {
		return 0
	}
	return math.Round(float64(m.Likes)/float64(m.Messages)*100) / 100
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "unknown"
	}
	return t.Format(dateLayout)
}
