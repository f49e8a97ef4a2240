package consts

const (
	Domain = "hueshift.cloud"

	LabelValueResourceSlice = "slice"
)

const (
	LabelKeyDomain   = Domain + "/domain"
	LabelKeyResource = Domain + "/resource"
	LabelKeyFor      = Domain + "/for"
	LabelKeyColor    = Domain + "/color"
)
