// internal/tui/app.go
//
// This is the interactive shell for the warehouse tool. It uses bubbletea,
// which follows The Elm Architecture:
//
// 1. Model: Your application state
// 2. Update: A function that updates state based on messages
// 3. View: A function that renders state to a string
//
// Every screen of the session is one value of the screen enum; the order
// workflow (search -> report -> login -> quantity) is a chain of prompt
// screens. All inventory decisions live in the internal packages; this
// file only routes operator input.

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/riteshp/the-warehouse/internal/catalog"
	"github.com/riteshp/the-warehouse/internal/config"
	"github.com/riteshp/the-warehouse/internal/inventory"
	"github.com/riteshp/the-warehouse/internal/logging"
	"github.com/riteshp/the-warehouse/internal/order"
	"github.com/riteshp/the-warehouse/internal/personnel"
	"github.com/riteshp/the-warehouse/internal/session"
)

// screen represents which "screen" we're on.
type screen int

const (
	screenNameEntry      screen = iota // session starts by asking the user name
	screenMenu                         // main menu
	screenReport                       // read-only report, any key returns to the menu
	screenItemPrompt                   // "What is the name of the item?"
	screenOrderConfirm                 // availability report + order intent (y/n)
	screenLoginPassword                // password prompt of the login gate
	screenLoginRetry                   // "try again?" after a failed login (y/n)
	screenLoginName                    // re-prompt the user name on retry
	screenQuantity                     // "How many would you like to order?"
	screenClampConfirm                 // one-shot clamp offer (y/n)
	screenOrderResult                  // order outcome, any key returns to the menu
	screenCategoryChoice               // numbered category menu + typed choice
)

// menuItem implements list.Item for the main menu.
type menuItem struct {
	title string
	desc  string
}

func (i menuItem) Title() string       { return i.title }
func (i menuItem) Description() string { return i.desc }
func (i menuItem) FilterValue() string { return i.title }

// AppOption customizes App construction for tests.
type AppOption func(*App)

// WithNow overrides the clock used for days-in-stock reports.
func WithNow(now func() time.Time) AppOption {
	return func(a *App) {
		if now != nil {
			a.now = now
		}
	}
}

// App is the main application model. In bubbletea, this holds ALL your
// state.
type App struct {
	config    *config.Config
	logger    *logging.Logger
	engine    *inventory.Engine
	personnel *personnel.Store
	session   *session.Session

	screen screen
	menu   list.Model
	input  textinput.Model

	prompt    string // label above the text input
	report    string // body for report-style screens
	statusMsg string // one-line status under the body
	resultMsg string // final order outcome

	itemName  string // the name the current search was run with
	available int    // total availability of the current search

	now func() time.Time

	width  int
	height int
}

// NewApp creates the shell over the loaded stores.
func NewApp(cfg *config.Config, cat *catalog.Store, people *personnel.Store, logger *logging.Logger, opts ...AppOption) *App {
	menuItems := []list.Item{
		menuItem{title: "1. List items by warehouse", desc: "Every warehouse with its stock and totals"},
		menuItem{title: "2. Search an item and place an order", desc: "Availability by warehouse, then order it"},
		menuItem{title: "3. Browse by category", desc: "Pick a category and list its items"},
		menuItem{title: "4. Quit", desc: "End the session and show the recap"},
	}
	menu := list.New(menuItems, list.NewDefaultDelegate(), 0, 0)
	menu.Title = "What would you like to do?"
	menu.SetShowStatusBar(false)
	menu.SetFilteringEnabled(false)

	input := textinput.New()
	input.CharLimit = 128
	input.Focus()

	app := &App{
		config:    cfg,
		logger:    logger,
		engine:    inventory.New(cat),
		personnel: people,
		session:   session.New(),
		screen:    screenNameEntry,
		menu:      menu,
		input:     input,
		prompt:    "Please enter your user name:",
		now:       time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(app)
		}
	}
	return app
}

// Session exposes the session so the entry point can print the farewell
// and the recap after the program exits the alt screen.
func (a *App) Session() *session.Session {
	return a.session
}

// Init is called once when the program starts.
func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

// Update is called when a message is received.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.menu.SetSize(max(20, msg.Width-6), max(10, msg.Height-10))
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		return a.handleKey(msg)
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.screen {
	case screenMenu:
		switch msg.String() {
		case "q":
			return a, tea.Quit
		case "enter":
			return a.dispatchMenu()
		}
		var cmd tea.Cmd
		a.menu, cmd = a.menu.Update(msg)
		return a, cmd

	case screenReport, screenOrderResult:
		a.returnToMenu()
		return a, nil

	default:
		return a.handlePrompt(msg)
	}
}

// handlePrompt routes keys on every screen that carries the text input.
func (a *App) handlePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.submit(strings.TrimSpace(a.input.Value()))
		return a, nil
	case "esc":
		a.cancelPrompt()
		return a, nil
	}
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// cancelPrompt abandons the current prompt. Once a search has produced a
// report the action counts as completed, so it is still logged.
func (a *App) cancelPrompt() {
	switch a.screen {
	case screenNameEntry:
		return // a session needs a user name
	case screenItemPrompt, screenCategoryChoice:
		a.returnToMenu()
	default:
		a.endSearch("")
	}
}

func (a *App) submit(value string) {
	switch a.screen {
	case screenNameEntry:
		a.submitName(value)
	case screenItemPrompt:
		a.submitItemName(value)
	case screenOrderConfirm:
		a.submitOrderConfirm(value)
	case screenLoginPassword:
		a.submitPassword(value)
	case screenLoginRetry:
		a.submitLoginRetry(value)
	case screenLoginName:
		a.submitLoginName(value)
	case screenQuantity:
		a.submitQuantity(value)
	case screenClampConfirm:
		a.submitClampConfirm(value)
	case screenCategoryChoice:
		a.submitCategoryChoice(value)
	}
}

func (a *App) dispatchMenu() (tea.Model, tea.Cmd) {
	switch a.menu.Index() {
	case 0:
		a.beginListing()
	case 1:
		a.beginSearch()
	case 2:
		a.beginBrowse()
	case 3:
		return a, tea.Quit
	}
	return a, nil
}

func (a *App) returnToMenu() {
	a.screen = screenMenu
	a.report = ""
	a.resultMsg = ""
	a.prompt = ""
}

// promptFor resets the shared text input for the next question.
func (a *App) promptFor(label string, masked bool) {
	a.prompt = label
	a.input.SetValue("")
	if masked {
		a.input.EchoMode = textinput.EchoPassword
	} else {
		a.input.EchoMode = textinput.EchoNormal
	}
	a.input.Focus()
}

// Session start
// =====================================================================

func (a *App) submitName(name string) {
	a.session.SetUserName(name)
	a.statusMsg = fmt.Sprintf("Hello %s!", name)
	a.logger.Printf("session started for %q in %s", name, a.config.ProjectDir)
	a.returnToMenu()
}

// Menu option: list items by warehouse
// =====================================================================

func (a *App) beginListing() {
	store := a.engine.Store()
	var b strings.Builder
	for _, w := range store.Warehouses() {
		fmt.Fprintf(&b, "Items in Warehouse %d\n", w)
		for _, rec := range store.ItemsByWarehouse(w) {
			fmt.Fprintf(&b, "- %s %s\n", rec.State, rec.Category)
		}
		b.WriteString("\n")
	}
	for _, w := range store.Warehouses() {
		fmt.Fprintf(&b, "Total items in warehouse %d: %d\n", w, len(store.ItemsByWarehouse(w)))
	}
	total := len(store.AllItems())
	a.session.Log().Append(session.ListedEntry(total))
	a.logger.Printf("listed %d items across %d warehouses", total, len(store.Warehouses()))
	a.report = b.String()
	a.screen = screenReport
}

// Menu option: search an item and place an order
// =====================================================================

func (a *App) beginSearch() {
	a.promptFor("What is the name of the item?", false)
	a.screen = screenItemPrompt
}

func (a *App) submitItemName(name string) {
	a.itemName = name
	matches := a.engine.MatchingItemsPerWarehouse(name)
	a.session.SetMatches(matches)
	a.available = inventory.TotalAvailability(matches)
	a.logger.Printf("search %q: %d available in %d warehouses", name, a.available, len(matches))

	var b strings.Builder
	fmt.Fprintf(&b, "Amount available: %d\n", a.available)
	if a.available == 0 {
		b.WriteString("Location: Not in stock\n")
		a.report = b.String()
		a.session.Log().Append(session.SearchedEntry(name))
		a.screen = screenReport
		return
	}
	b.WriteString("Location:\n")
	for _, w := range inventory.Warehouses(matches) {
		for _, rec := range matches[w] {
			fmt.Fprintf(&b, "- Warehouse %d (in stock for %d days)\n", rec.Warehouse, inventory.DaysInStock(rec, a.now()))
		}
	}
	if len(matches) > 1 {
		w, count := inventory.MaxAvailabilityLocation(matches)
		fmt.Fprintf(&b, "Maximum availability: %d in Warehouse %d\n", count, w)
	}
	a.report = b.String()
	a.promptFor("Would you like to order this item? (y/n)", false)
	a.screen = screenOrderConfirm
}

// endSearch closes the search-and-order workflow. The search is logged on
// every terminal path, whatever the order outcome was.
func (a *App) endSearch(result string) {
	a.session.Log().Append(session.SearchedEntry(a.itemName))
	if result == "" {
		a.returnToMenu()
		return
	}
	a.resultMsg = result
	a.report = ""
	a.prompt = ""
	a.screen = screenOrderResult
}

func (a *App) submitOrderConfirm(answer string) {
	if !order.IsYes(answer) {
		a.endSearch("")
		return
	}
	if a.session.LoggedIn() {
		a.beginQuantity()
		return
	}
	a.statusMsg = "You need to log in for this action."
	a.promptFor("Please enter your password:", true)
	a.screen = screenLoginPassword
}

// Login gate
// =====================================================================

func (a *App) submitPassword(password string) {
	if a.personnel.IsValid(a.session.UserName(), password) {
		a.session.MarkLoggedIn()
		a.statusMsg = "You logged in successfully"
		a.logger.Printf("login succeeded for %q", a.session.UserName())
		a.beginQuantity()
		return
	}
	a.logger.Printf("login failed for %q", a.session.UserName())
	a.promptFor("This was not successful. Do you want to try again? (y/n)", false)
	a.screen = screenLoginRetry
}

func (a *App) submitLoginRetry(answer string) {
	if !order.IsYes(answer) {
		a.endSearch("")
		return
	}
	a.promptFor("Please enter your user name:", false)
	a.screen = screenLoginName
}

func (a *App) submitLoginName(name string) {
	a.session.SetUserName(name)
	a.promptFor("Please enter your password:", true)
	a.screen = screenLoginPassword
}

// Quantity negotiation
// =====================================================================

func (a *App) beginQuantity() {
	a.promptFor("How many would you like to order?", false)
	a.screen = screenQuantity
}

func (a *App) submitQuantity(value string) {
	requested := order.ParseChoice(value)
	decision := order.Negotiate(requested, a.available)
	switch decision.Outcome {
	case order.Confirmed:
		a.logger.Printf("order confirmed: %d x %q", decision.Quantity, a.itemName)
		a.endSearch(order.ConfirmationMessage(decision.Quantity, strings.ToLower(a.itemName)))
	case order.ClampOffer:
		a.statusMsg = fmt.Sprintf("There are not this many available. The maximum amount that can be ordered is %d", decision.Quantity)
		a.promptFor("Would you like to order this amount? (y/n)", false)
		a.screen = screenClampConfirm
	default:
		a.endSearch("No order has been placed.")
	}
}

func (a *App) submitClampConfirm(answer string) {
	decision := order.ResolveClamp(order.IsYes(answer), a.available)
	if decision.Outcome == order.Confirmed {
		a.logger.Printf("order confirmed at clamp: %d x %q", decision.Quantity, a.itemName)
		a.endSearch(order.ConfirmationMessage(decision.Quantity, strings.ToLower(a.itemName)))
		return
	}
	a.endSearch("No order has been placed.")
}

// Menu option: browse by category
// =====================================================================

func (a *App) beginBrowse() {
	menu := a.engine.CategoryMenu()
	var b strings.Builder
	for i := 1; i <= len(menu); i++ {
		c := menu[i]
		fmt.Fprintf(&b, "%d. %s (%d)\n", i, c, len(a.engine.Store().ItemsByCategory(c)))
	}
	a.report = b.String()
	a.promptFor("Type the number of the category to browse:", false)
	a.screen = screenCategoryChoice
}

func (a *App) submitCategoryChoice(value string) {
	menu := a.engine.CategoryMenu()
	choice := order.ParseChoice(value)
	if choice < 1 || choice > len(menu) {
		a.statusMsg = "This is not a valid category."
		a.returnToMenu()
		return
	}
	category := menu[choice]
	var b strings.Builder
	fmt.Fprintf(&b, "List of %ss available:\n", strings.ToLower(category))
	for _, rec := range a.engine.Store().ItemsByCategory(category) {
		fmt.Fprintf(&b, "%s %s, Warehouse %d\n", rec.State, rec.Category, rec.Warehouse)
	}
	a.session.Log().Append(session.BrowsedEntry(category))
	a.logger.Printf("browsed category %q", category)
	a.report = b.String()
	a.screen = screenReport
}
