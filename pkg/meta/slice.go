package meta

const (
	DomainBase  = "hueshift.cloud"
	DomainSlice = "slice." + DomainBase
)

// Slice is the provenance record stamped onto every slice Deployment.
type Slice struct {
	SliceId           string `json:"slice_id"`
	SourceObj         ObjRef `json:"source_obj"`
	Color             string `json:"color"`
	TrafficPercentage uint32 `json:"traffic_percentage"`
}

func (s *Slice) GetDomain() string {
	return DomainSlice
}

type ObjRef struct {
	Name      string `json:"name"`
	Kind      string `json:"kind"`
	Namespace string `json:"namespace"`
}
