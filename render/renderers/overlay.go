package renderers

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/grid-snake/engine"
	"github.com/lixenwraith/grid-snake/parameter"
	"github.com/lixenwraith/grid-snake/render"
)

// OverlayRenderer draws per-mode banners, the leaderboard and name entry
type OverlayRenderer struct{}

func NewOverlayRenderer() *OverlayRenderer {
	return &OverlayRenderer{}
}

// Render implements SystemRenderer
func (r *OverlayRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	snap := ctx.Snapshot
	_, h := render.BoardSize(snap.GridSize)
	mid := ctx.BoardY + h/2

	switch snap.Mode {
	case engine.ModeStart:
		lines := []overlayLine{
			{parameter.TitleText, render.RgbHead, tcell.AttrBold},
			{"", render.RgbText, tcell.AttrNone},
			{parameter.StartPrompt, render.RgbText, tcell.AttrNone},
		}
		lines = append(lines, leaderboardLines(ctx)...)
		drawPanel(ctx, buf, mid, lines)

	case engine.ModePaused:
		drawPanel(ctx, buf, mid, []overlayLine{
			{parameter.PauseText, render.RgbPaused, tcell.AttrBold},
			{parameter.PausePrompt, render.RgbTextDim, tcell.AttrNone},
		})

	case engine.ModeLevelTransition:
		drawPanel(ctx, buf, mid, []overlayLine{
			{fmt.Sprintf("LEVEL %d COMPLETE", snap.Level), render.RgbLevelUp, tcell.AttrBold},
			{fmt.Sprintf("score %d", snap.Score), render.RgbText, tcell.AttrNone},
		})

	case engine.ModeGameOver:
		lines := []overlayLine{
			{parameter.GameOverText, render.RgbGameOver, tcell.AttrBold},
			{fmt.Sprintf("score %d   level %d", snap.Score, snap.Level), render.RgbText, tcell.AttrNone},
		}
		if ctx.Overlay.NameActive {
			lines = append(lines, overlayLine{
				parameter.NameEntryPrompt + ctx.Overlay.Name + "_", render.RgbHighlight, tcell.AttrBold,
			})
		} else if ctx.Overlay.Rank > 0 {
			lines = append(lines, overlayLine{
				fmt.Sprintf("ranked #%d", ctx.Overlay.Rank), render.RgbHighlight, tcell.AttrBold,
			})
		}
		lines = append(lines, leaderboardLines(ctx)...)
		lines = append(lines,
			overlayLine{"", render.RgbText, tcell.AttrNone},
			overlayLine{parameter.GameOverPrompt, render.RgbTextDim, tcell.AttrNone},
		)
		drawPanel(ctx, buf, mid, lines)
	}
}

type overlayLine struct {
	text  string
	color render.RGB
	attrs tcell.AttrMask
}

// leaderboardLines lists the top entries, nothing when the board is empty
func leaderboardLines(ctx render.RenderContext) []overlayLine {
	entries := ctx.Overlay.Leaderboard
	if len(entries) == 0 {
		return nil
	}
	if len(entries) > parameter.LeaderboardDisplaySize {
		entries = entries[:parameter.LeaderboardDisplaySize]
	}
	lines := []overlayLine{
		{"", render.RgbText, tcell.AttrNone},
		{"HIGH SCORES", render.RgbTextDim, tcell.AttrBold},
	}
	for i, e := range entries {
		color := render.RgbText
		if i+1 == ctx.Overlay.Rank {
			color = render.RgbHighlight
		}
		lines = append(lines, overlayLine{
			fmt.Sprintf("%d. %-*s %7d", i+1, parameter.NameMaxLength, e.Name, e.Score), color, tcell.AttrNone,
		})
	}
	return lines
}

// drawPanel centers lines vertically around mid on a shaded band
func drawPanel(ctx render.RenderContext, buf *render.RenderBuffer, mid int, lines []overlayLine) {
	top := mid - len(lines)/2
	buf.FillBg(0, top-1, ctx.ScreenWidth, len(lines)+2, render.RgbOverlayBg)
	for i, l := range lines {
		if l.text == "" {
			continue
		}
		buf.TextCentered(top+i, l.text, l.color, l.attrs)
	}
}
