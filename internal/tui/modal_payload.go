package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tinytelemetry/lotus-wallet/internal/model"
	"github.com/tinytelemetry/lotus-wallet/internal/payload"
)

// memoCharLimit caps typed input; the byte limit is enforced by validation.
const memoCharLimit = 20000

// TransferNote is the payload a memo is attached to.
type TransferNote struct {
	From    string `json:"from"`
	ChainID uint64 `json:"chainId"`
	Memo    string `json:"memo"`
}

// PayloadModal composes a memo and checks its serialized size.
type PayloadModal struct {
	ctx       ModalContext
	input     textinput.Model
	from      string
	chainID   uint64
	maxSizeKB float64
	result    *payload.Result
}

// NewPayloadModal creates the memo composer for the given sender.
func NewPayloadModal(ctx ModalContext, from string, chainID uint64, maxSizeKB float64) *PayloadModal {
	input := textinput.New()
	input.Placeholder = "Memo to attach to the transfer..."
	input.CharLimit = memoCharLimit
	input.Focus()

	return &PayloadModal{
		ctx:       ctx,
		input:     input,
		from:      from,
		chainID:   chainID,
		maxSizeKB: maxSizeKB,
	}
}

func (m *PayloadModal) ID() string { return "payload" }

// Result returns the last validation result, nil before the first submit.
func (m *PayloadModal) Result() *payload.Result { return m.result }

// SetValue replaces the memo text.
func (m *PayloadModal) SetValue(s string) { m.input.SetValue(s) }

// Note builds the payload that will be validated.
func (m *PayloadModal) Note() TransferNote {
	return TransferNote{From: m.from, ChainID: m.chainID, Memo: m.input.Value()}
}

func (m *PayloadModal) Update(msg tea.Msg) (bool, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(km, m.ctx.Keys.Escape):
			return true, nil
		case key.Matches(km, m.ctx.Keys.Enter):
			res := payload.ValidateSize(m.Note(), m.maxSizeKB)
			m.result = &res
			if !res.IsValid {
				return false, nil
			}
			return false, actionMsg(ActionMsg{
				Action:  ActionToast,
				Payload: Toast{Text: fmt.Sprintf("Memo ready (%.2fKB)", res.SizeKB), Kind: ToastSuccess},
			})
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return false, cmd
}

func (m *PayloadModal) View(width, height int) string {
	const modalWidth = 64
	m.input.Width = modalWidth - 8

	body := []string{m.input.View(), ""}
	switch {
	case m.result == nil:
		body = append(body, helpStyle.Render(fmt.Sprintf("Limit %.2fKB", m.limit())))
	case m.result.IsValid:
		body = append(body, lipgloss.NewStyle().Foreground(ColorGreen).Render(
			fmt.Sprintf("✓ %.2fKB of %.2fKB", m.result.SizeKB, m.limit())))
	default:
		body = append(body, RenderErrorMessage("Memo too large", m.result.Error, modalWidth-4))
	}

	return modalFrame{
		title:  "Transfer memo",
		body:   lipgloss.JoinVertical(lipgloss.Left, body...),
		status: []string{"Enter: Check size", "ESC: Close"},
		width:  modalWidth,
	}.render(width, height)
}

func (m *PayloadModal) limit() float64 {
	if m.maxSizeKB > 0 {
		return m.maxSizeKB
	}
	return model.DefaultMaxPayloadKB
}
