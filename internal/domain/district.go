package domain

// District is one of the five fixed administrative zones of the city.
type District string

const (
	DistrictMuye     District = "牧野"
	DistrictHongqi   District = "红旗"
	DistrictKaifa    District = "开发"
	DistrictWeibin   District = "卫滨"
	DistrictFengquan District = "凤泉"
)

// DistrictAll is the filter sentinel meaning "no district restriction".
const DistrictAll = "All"

// Districts returns the closed district set in display order.
func Districts() []District {
	return []District{DistrictMuye, DistrictHongqi, DistrictKaifa, DistrictWeibin, DistrictFengquan}
}

// ValidDistrict reports whether d belongs to the fixed set.
func ValidDistrict(d District) bool {
	switch d {
	case DistrictMuye, DistrictHongqi, DistrictKaifa, DistrictWeibin, DistrictFengquan:
		return true
	}
	return false
}
