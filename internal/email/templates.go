package email

import (
	"bytes"
	"html/template"
)

var resetTemplate = template.Must(template.New("password_reset").Parse(`
<html>
  <body>
    <h2>Сброс пароля</h2>
    <p>Вы запросили сброс пароля для админ-панели Alumni.</p>
    <p><a href="{{.ResetLink}}">Сбросить пароль</a></p>
    <p>Ссылка действует 1 час. Если вы не запрашивали сброс, проигнорируйте это письмо.</p>
  </body>
</html>
`))

// renderPasswordReset рендерит HTML письма сброса пароля
func renderPasswordReset(resetLink string) (string, error) {
	var buf bytes.Buffer
	err := resetTemplate.Execute(&buf, struct{ ResetLink string }{ResetLink: resetLink})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
