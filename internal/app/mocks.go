package app

// MockEmailProvider используется для тестов и локальной разработки без SMTP.
type MockEmailProvider struct{}

func (m *MockEmailProvider) Send(to, subject, htmlBody string) error { return nil }

func (m *MockEmailProvider) SendPasswordReset(to, resetLink string) error { return nil }
