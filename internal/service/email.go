package service

import (
	"context"
	"fmt"

	"locamaq-backend/internal/utils"

	"gopkg.in/gomail.v2"
)

type emailService struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewEmailService(host string, port int, username, password, from string) EmailService {
	return &emailService{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

func (s *emailService) send(m *gomail.Message) error {
	d := gomail.NewDialer(s.host, s.port, s.username, s.password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email via gomail: %w", err)
	}
	return nil
}

func (s *emailService) SendDueSoonReminder(ctx context.Context, to, clientName, contractNumber, dueDate string, value float64) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Contrato %s vence em breve", contractNumber))

	body := fmt.Sprintf("Olá %s,\n\nO contrato %s no valor de %s vence em %s.\n\nEntre em contato para renovar a locação ou agendar a devolução dos equipamentos.\n\nAtenciosamente,\nEquipe Locamaq", clientName, contractNumber, utils.FormatBRL(value), dueDate)
	m.SetBody("text/plain", body)

	return s.send(m)
}

func (s *emailService) SendSignatureRequest(ctx context.Context, to, clientName, contractNumber string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Assinatura pendente - Contrato %s", contractNumber))

	body := fmt.Sprintf("Olá %s,\n\nO contrato %s aguarda sua assinatura digital.\n\nAtenciosamente,\nEquipe Locamaq", clientName, contractNumber)
	m.SetBody("text/plain", body)

	return s.send(m)
}

func (s *emailService) SendOverdueNotice(ctx context.Context, to, clientName, contractNumber, dueDate string, value float64) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Contrato %s vencido", contractNumber))

	body := fmt.Sprintf("Olá %s,\n\nO contrato %s no valor de %s venceu em %s e a devolução dos equipamentos está pendente. Multas por atraso podem ser aplicadas.\n\nAtenciosamente,\nEquipe Locamaq", clientName, contractNumber, utils.FormatBRL(value), dueDate)
	m.SetBody("text/plain", body)

	return s.send(m)
}
