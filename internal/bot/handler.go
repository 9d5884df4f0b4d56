package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/moneywise/client-go/internal/api"
	"github.com/moneywise/client-go/internal/charts"
	"github.com/moneywise/client-go/internal/model"
)

func (b *Bot) handleCommand(message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		b.handleStart(message)
	case "login":
		b.handleLoginCommand(message)
	case "logout":
		b.handleLogout(message)
	case "report":
		b.requireAuth(message, b.handleReport)
	case "accounts":
		b.requireAuth(message, b.handleAccounts)
	case "budgets":
		b.requireAuth(message, b.handleBudgets)
	case "categories":
		b.requireAuth(message, b.handleCategories)
	}
}

// requireAuth gates a handler behind an authenticated session.
func (b *Bot) requireAuth(message *tgbotapi.Message, handler func(*tgbotapi.Message)) {
	if !b.auth.Authenticated() {
		b.send(tgbotapi.NewMessage(message.Chat.ID, "You are not signed in. Use /login to start."))
		return
	}
	handler(message)
}

func (b *Bot) handleStart(message *tgbotapi.Message) {
	if user := b.auth.CurrentUser(); user != nil {
		msg := tgbotapi.NewMessage(message.Chat.ID,
			fmt.Sprintf("Welcome back, %s! 💰\nChoose an action:", user.FirstName))
		msg.ReplyMarkup = b.mainKeyboard()
		b.send(msg)
		return
	}

	b.send(tgbotapi.NewMessage(message.Chat.ID,
		"Welcome to MoneyWise! 💰\n\n"+
			"I help you track accounts, budgets, income and expenses.\n\n"+
			"Use /login to sign in with your MoneyWise account."))
}

func (b *Bot) handleLoginCommand(message *tgbotapi.Message) {
	b.setState(message.Chat.ID, &chatState{Awaiting: "login"})
	b.send(tgbotapi.NewMessage(message.Chat.ID, "Send your credentials as: email password"))
}

func (b *Bot) handleLogout(message *tgbotapi.Message) {
	b.auth.Logout()
	b.resetState(message.Chat.ID)
	b.send(tgbotapi.NewMessage(message.Chat.ID, "Signed out. Use /login to sign in again."))
}

func (b *Bot) handleCallback(callback *tgbotapi.CallbackQuery) {
	message := &tgbotapi.Message{From: callback.From, Chat: callback.Message.Chat}

	switch {
	case callback.Data == "action_add_expense":
		b.requireAuth(message, func(m *tgbotapi.Message) { b.handleAddTransaction(m, "expense") })
	case callback.Data == "action_add_income":
		b.requireAuth(message, func(m *tgbotapi.Message) { b.handleAddTransaction(m, "income") })
	case callback.Data == "action_report":
		b.requireAuth(message, b.handleReport)
	case callback.Data == "action_accounts":
		b.requireAuth(message, b.handleAccounts)
	case callback.Data == "action_back":
		msg := tgbotapi.NewMessage(callback.Message.Chat.ID, "Choose an action:")
		msg.ReplyMarkup = b.mainKeyboard()
		b.send(msg)
	case strings.HasPrefix(callback.Data, "category_"):
		b.requireAuth(message, func(m *tgbotapi.Message) {
			b.handleCategoryPicked(m, strings.TrimPrefix(callback.Data, "category_"))
		})
	case callback.Data == "add_expense_category":
		b.setState(message.Chat.ID, &chatState{Awaiting: "new_category", CategoryType: "expense"})
		b.send(tgbotapi.NewMessage(message.Chat.ID, "Name for the new expense category:"))
	case callback.Data == "add_income_category":
		b.setState(message.Chat.ID, &chatState{Awaiting: "new_category", CategoryType: "income"})
		b.send(tgbotapi.NewMessage(message.Chat.ID, "Name for the new income category:"))
	}

	// Clears the client-side loading indicator.
	if _, err := b.api.Request(tgbotapi.NewCallback(callback.ID, "")); err != nil {
		b.log.WithError(err).Error("answer callback")
	}
}

func (b *Bot) handleMessage(message *tgbotapi.Message) {
	state, ok := b.state(message.Chat.ID)
	if !ok {
		msg := tgbotapi.NewMessage(message.Chat.ID, "Choose an action:")
		msg.ReplyMarkup = b.mainKeyboard()
		b.send(msg)
		return
	}

	switch state.Awaiting {
	case "login":
		b.handleLoginCredentials(message)
	case "new_category":
		b.handleNewCategory(message, state)
	default:
		b.handleAmountInput(message, state)
	}
}

func (b *Bot) handleLoginCredentials(message *tgbotapi.Message) {
	parts := strings.Fields(message.Text)
	if len(parts) != 2 {
		b.sendError(message.Chat.ID, "Wrong format. Send: email password")
		return
	}

	user, err := b.auth.Login(context.Background(), parts[0], parts[1])
	if err != nil {
		b.sendError(message.Chat.ID, loginFailureText(err))
		return
	}

	b.resetState(message.Chat.ID)
	msg := tgbotapi.NewMessage(message.Chat.ID,
		fmt.Sprintf("Signed in as %s ✅\nChoose an action:", user.Email))
	msg.ReplyMarkup = b.mainKeyboard()
	b.send(msg)
}

func loginFailureText(err error) string {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return "Sign-in failed, please try again"
}

func (b *Bot) handleAddTransaction(message *tgbotapi.Message, kind string) {
	categories, err := b.tracker.Categories(context.Background())
	if err != nil {
		b.sendError(message.Chat.ID, "Could not load categories")
		return
	}

	filtered := make([]model.Category, 0, len(categories))
	for _, category := range categories {
		if category.Type == kind {
			filtered = append(filtered, category)
		}
	}
	if len(filtered) == 0 {
		b.sendError(message.Chat.ID, "No "+kind+" categories yet. Add one via /categories")
		return
	}

	msg := tgbotapi.NewMessage(message.Chat.ID, "Pick a category:")
	msg.ReplyMarkup = b.categoriesKeyboard(filtered)
	b.send(msg)
}

func (b *Bot) handleCategoryPicked(message *tgbotapi.Message, categoryID string) {
	categories, err := b.tracker.Categories(context.Background())
	if err != nil {
		b.sendError(message.Chat.ID, "Could not load categories")
		return
	}

	var categoryName, categoryType string
	for _, category := range categories {
		if category.ID == categoryID {
			categoryName = category.Name
			categoryType = category.Type
			break
		}
	}

	b.setState(message.Chat.ID, &chatState{
		Awaiting:           "amount",
		SelectedCategoryID: categoryID,
		CategoryType:       categoryType,
	})
	b.send(tgbotapi.NewMessage(message.Chat.ID,
		fmt.Sprintf("Category: %s\nSend amount and description, e.g.:\n12.50 groceries", categoryName)))
}

func (b *Bot) handleAmountInput(message *tgbotapi.Message, state *chatState) {
	parts := strings.SplitN(message.Text, " ", 2)
	if len(parts) != 2 {
		b.sendError(message.Chat.ID, "Wrong format. Use: <amount> <description>")
		return
	}

	amount, err := strconv.ParseFloat(parts[0], 64)
	if err != nil || amount <= 0 {
		b.sendError(message.Chat.ID, "Amount must be a positive number, e.g. 12.50")
		return
	}

	ctx := context.Background()
	if state.CategoryType == "income" {
		_, err = b.tracker.AddIncome(ctx, "", "", amount, parts[1])
	} else {
		_, err = b.tracker.AddExpense(ctx, "", state.SelectedCategoryID, amount, parts[1])
	}
	if err != nil {
		b.sendError(message.Chat.ID, "Could not save the transaction")
		return
	}

	b.resetState(message.Chat.ID)
	msg := tgbotapi.NewMessage(message.Chat.ID, "Saved! ✅")
	msg.ReplyMarkup = b.mainKeyboard()
	b.send(msg)
}

func (b *Bot) handleNewCategory(message *tgbotapi.Message, state *chatState) {
	category, err := b.tracker.CreateCategory(context.Background(), message.Text, state.CategoryType)
	if err != nil {
		b.sendError(message.Chat.ID, "Could not create the category")
		return
	}

	b.resetState(message.Chat.ID)
	b.send(tgbotapi.NewMessage(message.Chat.ID,
		fmt.Sprintf("Category %q created ✅", category.Name)))
	b.handleCategories(message)
}

func (b *Bot) handleReport(message *tgbotapi.Message) {
	report, err := b.tracker.MonthlyReport(context.Background())
	if err != nil {
		b.sendError(message.Chat.ID, "Could not build the report")
		return
	}

	text := fmt.Sprintf(
		"📊 Report for %s\n\n"+
			"💰 Income: %.2f\n"+
			"💸 Expenses: %.2f\n"+
			"💵 Balance: %.2f\n"+
			"🏦 Savings rate: %.0f%%\n",
		report.Period,
		report.Current.TotalIncome,
		report.Current.TotalExpenses,
		report.Balance(),
		report.SavingsRate*100,
	)
	if len(report.Current.ByCategory) > 0 {
		text += "\nBy category:\n"
		for name, amount := range report.Current.ByCategory {
			text += fmt.Sprintf("• %s: %.2f\n", name, amount)
		}
	}
	b.send(tgbotapi.NewMessage(message.Chat.ID, text))

	currency := ""
	if user := b.auth.CurrentUser(); user != nil {
		currency = user.Currency
	}
	generator := charts.NewGenerator(currency)
	dashboard, err := generator.MonthlyDashboard(report)
	if err != nil {
		b.log.WithError(err).Error("render report chart")
		return
	}
	if dashboard != nil {
		b.send(tgbotapi.NewPhoto(message.Chat.ID, tgbotapi.FileBytes{
			Name:  "report.png",
			Bytes: dashboard,
		}))
	}

	pie, err := generator.CategoryPie(report.Current.ByCategory)
	if err != nil {
		b.log.WithError(err).Error("render category chart")
		return
	}
	if pie != nil {
		b.send(tgbotapi.NewPhoto(message.Chat.ID, tgbotapi.FileBytes{
			Name:  "categories.png",
			Bytes: pie,
		}))
	}
}

func (b *Bot) handleAccounts(message *tgbotapi.Message) {
	dashboard, err := b.tracker.Dashboard(context.Background())
	if err != nil {
		b.sendError(message.Chat.ID, "Could not load your accounts")
		return
	}

	text := "🏦 Your accounts:\n\n"
	for _, account := range dashboard.Accounts {
		text += fmt.Sprintf("• %s (%s): %.2f %s\n", account.Name, account.Type, account.Balance, account.Currency)
	}
	text += fmt.Sprintf("\nTotal: %.2f\n", dashboard.TotalBalance())

	if len(dashboard.CreditCards) > 0 {
		text += "\n💳 Credit cards:\n"
		for _, card := range dashboard.CreditCards {
			text += fmt.Sprintf("• %s ···%s: %.2f of %.2f\n", card.Name, card.LastFour, card.Balance, card.CreditLimit)
		}
	}
	if len(dashboard.RecentTransfers) > 0 {
		text += "\n🔁 Recent transfers:\n"
		for _, transfer := range dashboard.RecentTransfers {
			text += fmt.Sprintf("• %.2f on %s\n", transfer.Amount, transfer.Date)
		}
	}

	b.send(tgbotapi.NewMessage(message.Chat.ID, text))
}

func (b *Bot) handleBudgets(message *tgbotapi.Message) {
	budgets, err := b.tracker.Budgets(context.Background())
	if err != nil {
		b.sendError(message.Chat.ID, "Could not load budgets")
		return
	}
	if len(budgets) == 0 {
		b.send(tgbotapi.NewMessage(message.Chat.ID, "No budgets yet."))
		return
	}

	text := "🎯 Budgets:\n\n"
	for _, budget := range budgets {
		text += fmt.Sprintf("• %s: %.2f of %.2f (%s)\n", budget.Name, budget.Spent, budget.Amount, budget.Period)
	}
	b.send(tgbotapi.NewMessage(message.Chat.ID, text))
}

func (b *Bot) handleCategories(message *tgbotapi.Message) {
	categories, err := b.tracker.Categories(context.Background())
	if err != nil {
		b.sendError(message.Chat.ID, "Could not load categories")
		return
	}

	text := "📋 Your categories:\n\n💰 Income:\n"
	for _, category := range categories {
		if category.Type == "income" {
			text += fmt.Sprintf("• %s\n", category.Name)
		}
	}
	text += "\n💸 Expenses:\n"
	for _, category := range categories {
		if category.Type == "expense" {
			text += fmt.Sprintf("• %s\n", category.Name)
		}
	}

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("➕ Income category", "add_income_category"),
			tgbotapi.NewInlineKeyboardButtonData("➕ Expense category", "add_expense_category"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔙 Back", "action_back"),
		),
	)

	msg := tgbotapi.NewMessage(message.Chat.ID, text)
	msg.ReplyMarkup = keyboard
	b.send(msg)
}
