package email

// Provider определяет интерфейс для отправки email
type Provider interface {
	// Send отправляет простое HTML письмо
	Send(to, subject, htmlBody string) error

	// SendPasswordReset отправляет письмо со ссылкой сброса пароля.
	// Ошибка отправки НЕ глотается: вызывающий обязан поднять ее как 500.
	SendPasswordReset(to, resetLink string) error
}
