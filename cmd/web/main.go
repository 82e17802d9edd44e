// @title           Alumni Outcomes API
// @version         1.0
// @description     API для учета выпускников программы и их карьерных исходов.
// @contact.name    Alumni Platform
// @contact.email   support@alumni.local
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:4000
// @BasePath        /api/v1

package main

import "alumni_backend/internal/app"

func main() {
	app.Run()
}
