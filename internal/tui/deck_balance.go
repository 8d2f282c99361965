package tui

import (
	"fmt"

	"github.com/NimbleMarkets/ntcharts/barchart"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tinytelemetry/lotus-wallet/internal/model"
	"github.com/tinytelemetry/lotus-wallet/internal/wallet"
)

// BalanceDeck shows the connected account, its active network and balance,
// plus a chart of balances across supported networks.
type BalanceDeck struct {
	snap        wallet.Snapshot
	openNetwork func() tea.Cmd
}

// NewBalanceDeck creates the balance deck. Selecting it opens the network
// switcher through openNetwork.
func NewBalanceDeck(openNetwork func() tea.Cmd) *BalanceDeck {
	return &BalanceDeck{openNetwork: openNetwork}
}

func (d *BalanceDeck) ID() string    { return "balance" }
func (d *BalanceDeck) Title() string { return "Balance" }

func (d *BalanceDeck) Apply(snap wallet.Snapshot) { d.snap = snap }

func (d *BalanceDeck) ContentLines(_ ViewContext) int { return 7 }

func (d *BalanceDeck) OnSelect(_ ViewContext) tea.Cmd {
	if d.openNetwork == nil {
		return nil
	}
	return d.openNetwork()
}

func (d *BalanceDeck) Render(ctx ViewContext, width, height int, active bool) string {
	inner := width - 4
	lines := height - 3
	if lines < 1 {
		lines = 1
	}

	var content string
	switch {
	case !ctx.Loaded:
		content = renderLoadingPlaceholder(inner, lines)
	case ctx.LastError != "" && !d.snap.Account.Connected():
		content = RenderErrorMessage("Wallet unavailable", ctx.LastError, min(inner, 60))
	default:
		content = d.renderContent(inner, lines)
	}

	title := d.Title()
	if ctx.LastError != "" && d.snap.Account.Connected() {
		title += errorTitleStyle.Render(" ⚠ stale")
	}
	return renderDeckFrame(title, content, width, height, active)
}

func (d *BalanceDeck) renderContent(width, lines int) string {
	acct := d.snap.Account
	if !acct.Connected() {
		return d.renderDisconnected(acct.Status)
	}

	name := d.snap.Chain.Name
	if name == "" {
		name = fmt.Sprintf("Chain %d", acct.ChainID)
	}
	network := chainStyle.Render(name)
	if d.snap.Chain.Testnet {
		network += helpStyle.Render(" (testnet)")
	}

	summary := lipgloss.JoinVertical(lipgloss.Left,
		labelStyle.Render("Address")+addressStyle.Render(wallet.TruncateAddress(acct.Address)),
		labelStyle.Render("Network")+network,
		labelStyle.Render("Balance")+valueStyle.Render(d.snap.Balance.Formatted()),
	)

	chartWidth := width - lipgloss.Width(summary) - 4
	if chartWidth < 20 || lines < 4 {
		return summary
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, summary, "    ", d.renderChart(chartWidth, lines))
}

func (d *BalanceDeck) renderDisconnected(status model.ConnectionStatus) string {
	switch status {
	case model.StatusConnecting, model.StatusReconnecting:
		return helpStyle.Render("Connecting to wallet...")
	default:
		return lipgloss.JoinVertical(lipgloss.Left,
			valueStyle.Render("Wallet not connected"),
			helpStyle.Render("Press c to connect"),
		)
	}
}

// renderChart draws one bar per supported network, in chain list order.
func (d *BalanceDeck) renderChart(width, height int) string {
	var total float64
	for _, b := range d.snap.Balances {
		total += b.Float()
	}
	if total == 0 {
		return helpStyle.Render("No balances on supported networks")
	}

	bc := barchart.New(width, height,
		barchart.WithBarGap(1),
		barchart.WithBarWidth(3),
	)

	barStyle := lipgloss.NewStyle().Foreground(ColorBlue).Background(ColorBlue)
	activeStyle := lipgloss.NewStyle().Foreground(ColorPurple).Background(ColorPurple)

	for _, c := range d.snap.Chains {
		style := barStyle
		if c.ID == d.snap.Account.ChainID {
			style = activeStyle
		}
		bc.Push(barchart.BarData{
			Label: shortLabel(c.Name, 3),
			Values: []barchart.BarValue{
				{Name: c.NativeSymbol, Value: d.snap.Balances[c.ID].Float(), Style: style},
			},
		})
	}

	bc.Draw()
	return bc.View()
}

func shortLabel(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
