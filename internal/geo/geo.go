package geo

import "math"

// Радиус Земли в метрах (средний)
const earthRadiusMeters = 6371000.0

// DistanceMeters считает расстояние между двумя точками по формуле гаверсинусов
func DistanceMeters(lat1, lng1, lat2, lng2 float64) float64 {
	phi1 := radians(lat1)
	phi2 := radians(lat2)
	dPhi := radians(lat2 - lat1)
	dLambda := radians(lng2 - lng1)

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

// BoundingBox возвращает границы квадрата вокруг центра для грубого SQL-префильтра.
// Точная проверка расстояния выполняется после, по DistanceMeters
type BoundingBox struct {
	MinLat float64
	MaxLat float64
	MinLng float64
	MaxLng float64
}

func BoundingBoxAround(lat, lng, radiusMeters float64) BoundingBox {
	dLat := degrees(radiusMeters / earthRadiusMeters)

	// У полюсов долготная ширина вырождается, отдаем весь диапазон
	cosLat := math.Cos(radians(lat))
	dLng := 180.0
	if cosLat > 1e-9 {
		dLng = degrees(radiusMeters / (earthRadiusMeters * cosLat))
	}

	minLng := lng - dLng
	maxLng := lng + dLng
	// Рамка через антимеридиан не выражается одним диапазоном BETWEEN,
	// поэтому расширяем до всех долгот; лишнее отсеет точная проверка радиуса
	if minLng < -180 || maxLng > 180 {
		minLng, maxLng = -180, 180
	}

	return BoundingBox{
		MinLat: math.Max(lat-dLat, -90),
		MaxLat: math.Min(lat+dLat, 90),
		MinLng: minLng,
		MaxLng: maxLng,
	}
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }
func degrees(rad float64) float64 { return rad * 180 / math.Pi }
