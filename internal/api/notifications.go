package api

import (
	"context"
	"net/http"

	"github.com/moneywise/client-go/internal/model"
)

func (c *Client) ListNotifications(ctx context.Context) ([]model.Notification, error) {
	var notifications []model.Notification
	if err := c.do(ctx, http.MethodGet, "/api/notifications", nil, nil, &notifications); err != nil {
		return nil, err
	}
	if notifications == nil {
		notifications = []model.Notification{}
	}
	return notifications, nil
}

func (c *Client) MarkNotificationRead(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPut, "/api/notifications/"+id+"/read", nil, nil, nil)
}

func (c *Client) DeleteNotification(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/notifications/"+id, nil, nil, nil)
}

func (c *Client) ListReminders(ctx context.Context) ([]model.Reminder, error) {
	var reminders []model.Reminder
	if err := c.do(ctx, http.MethodGet, "/api/reminders", nil, nil, &reminders); err != nil {
		return nil, err
	}
	if reminders == nil {
		reminders = []model.Reminder{}
	}
	return reminders, nil
}

func (c *Client) ListAlerts(ctx context.Context) ([]model.Alert, error) {
	var alerts []model.Alert
	if err := c.do(ctx, http.MethodGet, "/api/alerts", nil, nil, &alerts); err != nil {
		return nil, err
	}
	if alerts == nil {
		alerts = []model.Alert{}
	}
	return alerts, nil
}
