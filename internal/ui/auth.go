package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/desertthunder/spotui/internal/models"
	"github.com/desertthunder/spotui/internal/session"
)

// Sign-up field order. The gender picker sits after the last text field.
const (
	suEmail = iota
	suPassword
	suName
	suDay
	suMonth
	suYear
)

// Login field order.
const (
	liIdentifier = iota
	liPassword
)

// authForm is the state of the Login and SignUp screens.
type authForm struct {
	signUp bool
	inputs []textinput.Model
	focus  int
	gender session.Gender
	busy   bool
}

// newInput builds a text field with a static cursor.
func newInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Cursor.SetMode(cursor.CursorStatic)
	return ti
}

func newPasswordInput(placeholder string) textinput.Model {
	ti := newInput(placeholder, 64)
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'
	return ti
}

func newLoginForm() *authForm {
	f := &authForm{inputs: []textinput.Model{
		newInput("Email or username", 128),
		newPasswordInput("Password"),
	}}
	f.inputs[0].Focus()
	return f
}

func newSignUpForm() *authForm {
	f := &authForm{signUp: true, inputs: []textinput.Model{
		newInput("Email", 128),
		newPasswordInput(fmt.Sprintf("Password (%d+ characters)", session.MinPasswordLength)),
		newInput("Full name", 64),
		newInput("DD", 2),
		newInput("MM", 2),
		newInput("YYYY", 4),
	}}
	f.inputs[0].Focus()
	return f
}

// fields counts the focusable rows.
func (f *authForm) fields() int {
	if f.signUp {
		return len(f.inputs) + 1
	}
	return len(f.inputs)
}

func (f *authForm) onGender() bool { return f.signUp && f.focus == len(f.inputs) }

func (f *authForm) move(delta int) {
	if f.focus < len(f.inputs) {
		f.inputs[f.focus].Blur()
	}
	n := f.fields()
	f.focus = ((f.focus+delta)%n + n) % n
	if f.focus < len(f.inputs) {
		f.inputs[f.focus].Focus()
	}
}

func (f *authForm) value(i int) string { return f.inputs[i].Value() }

func (f *authForm) signUpForm() session.SignUpForm {
	return session.SignUpForm{
		Email:    strings.TrimSpace(f.value(suEmail)),
		Password: f.value(suPassword),
		FullName: strings.TrimSpace(f.value(suName)),
		Day:      strings.TrimSpace(f.value(suDay)),
		Month:    strings.TrimSpace(f.value(suMonth)),
		Year:     strings.TrimSpace(f.value(suYear)),
		Gender:   f.gender,
	}
}

func (f *authForm) update(msg tea.Msg) tea.Cmd {
	if f.focus >= len(f.inputs) {
		return nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (m *Model) switchAuth(signUp bool) {
	m.flash = ""
	if signUp {
		m.screen = models.ScreenSignUp
		m.auth = newSignUpForm()
		return
	}
	m.screen = models.ScreenLogin
	m.auth = newLoginForm()
}

func (m *Model) handleAuthKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.auth
	if f.busy {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.switchF):
		m.switchAuth(!f.signUp)
		return m, nil
	case key.Matches(msg, m.keys.nextTab), msg.Type == tea.KeyDown:
		f.move(1)
		return m, nil
	case key.Matches(msg, m.keys.prevTab), msg.Type == tea.KeyUp:
		f.move(-1)
		return m, nil
	case key.Matches(msg, m.keys.enter):
		return m, m.submitAuth()
	}

	if f.onGender() {
		switch {
		case key.Matches(msg, m.keys.left):
			f.gender = session.Male
		case key.Matches(msg, m.keys.right):
			f.gender = session.Female
		}
		return m, nil
	}
	return m, f.update(msg)
}

// submitAuth runs the form against the session service off the event loop.
func (m *Model) submitAuth() tea.Cmd {
	f := m.auth
	m.flash = ""

	if f.signUp {
		form := f.signUpForm()
		if err := form.Validate(); err != nil {
			m.setFlash(err.Error(), false)
			return nil
		}
		f.busy = true
		return func() tea.Msg {
			return authDoneMsg(true, m.app.Session.SignUp(m.ctx, form))
		}
	}

	identifier, password := f.value(liIdentifier), f.value(liPassword)
	if strings.TrimSpace(identifier) == "" || strings.TrimSpace(password) == "" {
		m.setFlash(session.ErrMissingCredentials.Error(), false)
		return nil
	}
	f.busy = true
	return func() tea.Msg {
		return authDoneMsg(false, m.app.Session.Login(m.ctx, identifier, password))
	}
}

// authFinished refreshes the session and asks the navigation cache where to land.
func (m *Model) authFinished(res authDone) tea.Cmd {
	if m.auth != nil {
		m.auth.busy = false
	}
	if res.err != nil {
		m.setFlash(authMessage(res.err), false)
		return nil
	}

	m.app.RefreshUser(m.ctx)
	if res.signUp {
		m.setFlash("Account created successfully!", true)
	} else {
		m.flash = ""
	}
	return m.restore()
}

// authMessage strips storage details from service errors.
func authMessage(err error) string {
	for _, sentinel := range []error{session.ErrSignUpFailed, session.ErrLoginFailed} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return err.Error()
}

func (m *Model) renderAuth() string {
	f := m.auth
	var b strings.Builder

	if f.signUp {
		b.WriteString(m.palette.title.Render("Sign up for free to start listening."))
		labels := []string{"Email", "Password", "What's your name?", "Day", "Month", "Year"}
		for i, in := range f.inputs {
			if i == suDay {
				b.WriteString("\n" + m.palette.muted.Render("Date of birth"))
			}
			fmt.Fprintf(&b, "\n%s\n%s", m.palette.muted.Render(labels[i]), in.View())
		}

		b.WriteString("\n\n" + m.palette.muted.Render("Gender") + "\n")
		for _, g := range []session.Gender{session.Male, session.Female} {
			mark := "( )"
			if f.gender == g {
				mark = "(•)"
			}
			opt := fmt.Sprintf("%s %s", mark, g)
			if f.onGender() {
				opt = m.palette.text.Render(opt)
			} else {
				opt = m.palette.muted.Render(opt)
			}
			b.WriteString(opt + "  ")
		}
		b.WriteString("\n\n" + m.palette.help.Render("enter: sign up • tab: next field • ←/→: gender • ctrl+s: log in instead"))
	} else {
		b.WriteString(m.palette.title.Render("Log in to Spotify"))
		labels := []string{"Email or username", "Password"}
		for i, in := range f.inputs {
			fmt.Fprintf(&b, "\n%s\n%s", m.palette.muted.Render(labels[i]), in.View())
		}
		b.WriteString("\n\n" + m.palette.help.Render("enter: log in • tab: next field • ctrl+s: sign up for free"))
	}

	if f.busy {
		b.WriteString("\n\n" + m.palette.muted.Render("Please wait..."))
	}
	return b.String()
}
