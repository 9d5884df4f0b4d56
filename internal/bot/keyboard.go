package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/moneywise/client-go/internal/model"
)

func (b *Bot) mainKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("💰 Add income", "action_add_income"),
			tgbotapi.NewInlineKeyboardButtonData("💸 Add expense", "action_add_expense"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📊 Report", "action_report"),
			tgbotapi.NewInlineKeyboardButtonData("🏦 Accounts", "action_accounts"),
		),
	)
}

func (b *Bot) categoriesKeyboard(categories []model.Category) tgbotapi.InlineKeyboardMarkup {
	var buttons [][]tgbotapi.InlineKeyboardButton
	for _, category := range categories {
		buttons = append(buttons, []tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData(category.Name, "category_"+category.ID),
		})
	}
	return tgbotapi.NewInlineKeyboardMarkup(buttons...)
}
