package logger

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// LoggerMiddleware mencatat semua request API penilaian (waktu lokal sekolah)
func LoggerMiddleware() fiber.Handler {
	return logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Jakarta",
		Format:     "[PENILAIAN] [${time}] ${ip} - ${method} ${path} - ${status} - ${latency}\n",
	})
}
