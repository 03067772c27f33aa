// Package crs resolves coordinate reference systems and builds planar transforms.
//
// Source systems are the 19 JGD2011 plane rectangular zones (EPSG 6669-6687)
// commonly used in Japanese engineering drawings. Output systems are WGS84,
// Web Mercator, or the source system itself.
package crs

import (
	"fmt"

	"github.com/ctessum/geom/proj"
)

// Output selects the destination coordinate system of a conversion.
type Output string

const (
	OutputWGS84       Output = "wgs84"
	OutputWebMercator Output = "webmercator"
	OutputSource      Output = "source"
)

const (
	epsgWGS84       = 4326
	epsgWebMercator = 3857

	wgs84Proj4 = "+proj=longlat +datum=WGS84 +no_defs"
	// Spherical Mercator as used by web map tile schemes.
	webMercatorProj4 = "+proj=merc +a=6378137 +b=6378137 +lat_ts=0.0 +lon_0=0.0 +x_0=0.0 +y_0=0 +k=1.0 +units=m +nadgrids=@null +no_defs"
)

// Zone describes one JGD2011 plane rectangular coordinate system.
type Zone struct {
	Number int    // zone number, 1-19
	EPSG   int    // EPSG code, 6669-6687
	Region string // covered prefectures, abbreviated
	proj4  string
}

func tmerc(lat0 float64, lon0 string) string {
	return fmt.Sprintf(
		"+proj=tmerc +lat_0=%g +lon_0=%s +k=0.9999 +x_0=0 +y_0=0 +ellps=GRS80 +units=m +no_defs",
		lat0, lon0)
}

// zones lists all JGD2011 plane rectangular systems in zone order.
var zones = []Zone{
	{1, 6669, "Nagasaki, western Kagoshima", tmerc(33, "129.5")},
	{2, 6670, "Fukuoka, Saga, Kumamoto, Oita, Miyazaki, Kagoshima", tmerc(33, "131")},
	{3, 6671, "Yamaguchi, Shimane, Hiroshima", tmerc(36, "132.166666666667")},
	{4, 6672, "Kagawa, Ehime, Tokushima, Kochi", tmerc(33, "133.5")},
	{5, 6673, "Hyogo, Tottori, Okayama", tmerc(36, "134.333333333333")},
	{6, 6674, "Kyoto, Osaka, Fukui, Shiga, Mie, Nara, Wakayama", tmerc(36, "136")},
	{7, 6675, "Ishikawa, Toyama, Gifu, Aichi", tmerc(36, "137.166666666667")},
	{8, 6676, "Niigata, Nagano, Yamanashi, Shizuoka", tmerc(36, "138.5")},
	{9, 6677, "Tokyo, Fukushima, Tochigi, Ibaraki, Saitama, Chiba, Gunma, Kanagawa", tmerc(36, "139.833333333333")},
	{10, 6678, "Aomori, Akita, Yamagata, Iwate, Miyagi", tmerc(40, "140.833333333333")},
	{11, 6679, "western Hokkaido (Otaru, Hakodate)", tmerc(44, "140.25")},
	{12, 6680, "central Hokkaido", tmerc(44, "142.25")},
	{13, 6681, "eastern Hokkaido (Kitami, Obihiro)", tmerc(44, "144.25")},
	{14, 6682, "Tokyo southern islands (Ogasawara)", tmerc(26, "142")},
	{15, 6683, "Okinawa main island", tmerc(26, "127.5")},
	{16, 6684, "Okinawa, Sakishima islands", tmerc(26, "124")},
	{17, 6685, "Okinawa, Daito islands", tmerc(26, "131")},
	{18, 6686, "Tokyo, Okinotorishima", tmerc(20, "136")},
	{19, 6687, "Tokyo, Minamitorishima", tmerc(26, "154")},
}

// Zones returns all plane rectangular zones in zone-number order.
func Zones() []Zone {
	out := make([]Zone, len(zones))
	copy(out, zones)
	return out
}

// ZoneByNumber returns the zone with the given number (1-19).
func ZoneByNumber(n int) (Zone, error) {
	if n < 1 || n > len(zones) {
		return Zone{}, fmt.Errorf("crs: zone %d out of range 1-%d", n, len(zones))
	}
	return zones[n-1], nil
}

// ZoneByEPSG returns the zone with the given EPSG code.
func ZoneByEPSG(code int) (Zone, error) {
	for _, z := range zones {
		if z.EPSG == code {
			return z, nil
		}
	}
	return Zone{}, fmt.Errorf("crs: EPSG:%d is not a JGD2011 plane rectangular system", code)
}

// SR parses the zone definition into a spatial reference.
func (z Zone) SR() (*proj.SR, error) {
	sr, err := proj.Parse(z.proj4)
	if err != nil {
		return nil, fmt.Errorf("crs: parse EPSG:%d: %w", z.EPSG, err)
	}
	return sr, nil
}

// Transform is an immutable transform context for one (source, destination)
// pair, reusable across all geometries of a conversion run.
type Transform struct {
	SourceEPSG int
	DestEPSG   int
	DestName   string // authority:code form, e.g. "EPSG:4326"
	Func       proj.Transformer
	Inverse    proj.Transformer
}

// NewTransform resolves the source zone and output selection into a transform
// context. Both directions are built so callers can verify round trips.
func NewTransform(zone Zone, out Output) (*Transform, error) {
	srcSR, err := zone.SR()
	if err != nil {
		return nil, err
	}

	var dstEPSG int
	var dstProj4 string
	switch out {
	case OutputWGS84:
		dstEPSG, dstProj4 = epsgWGS84, wgs84Proj4
	case OutputWebMercator:
		dstEPSG, dstProj4 = epsgWebMercator, webMercatorProj4
	case OutputSource:
		dstEPSG, dstProj4 = zone.EPSG, zone.proj4
	default:
		return nil, fmt.Errorf("crs: unknown output system %q", out)
	}

	dstSR, err := proj.Parse(dstProj4)
	if err != nil {
		return nil, fmt.Errorf("crs: parse EPSG:%d: %w", dstEPSG, err)
	}

	forward, err := srcSR.NewTransform(dstSR)
	if err != nil {
		return nil, fmt.Errorf("crs: transform EPSG:%d to EPSG:%d: %w", zone.EPSG, dstEPSG, err)
	}
	inverse, err := dstSR.NewTransform(srcSR)
	if err != nil {
		return nil, fmt.Errorf("crs: transform EPSG:%d to EPSG:%d: %w", dstEPSG, zone.EPSG, err)
	}

	return &Transform{
		SourceEPSG: zone.EPSG,
		DestEPSG:   dstEPSG,
		DestName:   fmt.Sprintf("EPSG:%d", dstEPSG),
		Func:       forward,
		Inverse:    inverse,
	}, nil
}
