package alerts

import "math"

// minDailySales piso para la venta diaria promedio. Evita la división por cero
// y acota la proyección cuando las ventas del período son muy bajas: para
// productos de baja rotación la estimación sale conservadora (menos días de los
// reales). No cambiar la constante sin recalibrar las alertas.
const minDailySales = 0.01

// EstimateDaysUntilStockout proyecta los días restantes de stock al ritmo de venta
// promedio del período (servicio de dominio, función pura).
// VentaDiaria = max(recentSold/windowDays, 0.01); Días = round(currentStock/VentaDiaria)
// Redondeo al entero más cercano, mitades alejándose de cero (math.Round).
// currentStock = 0 devuelve siempre 0.
func EstimateDaysUntilStockout(currentStock, recentSold, windowDays int) int {
	if currentStock <= 0 {
		return 0
	}
	avgDaily := minDailySales
	if windowDays > 0 {
		if v := float64(recentSold) / float64(windowDays); v > avgDaily {
			avgDaily = v
		}
	}
	return int(math.Round(float64(currentStock) / avgDaily))
}
