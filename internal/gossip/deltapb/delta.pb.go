// Package deltapb defines the wire message DeltaService carries: an
// opaque CRDT delta payload plus the replica ID and sequence number it
// was broadcast under. Generated by hand in the classic protoc-gen-go
// struct-tag style (the teacher's comm package never checked in its
// own generated .pb.go), not with protoc.
package deltapb

import (
	proto "github.com/golang/protobuf/proto"
)

// Delta is one CRDT delta in flight between replicas. Payload is
// whatever the caller's Join-able type serialized itself into;
// DeltaService never inspects it.
type Delta struct {
	Replica string `protobuf:"bytes,1,opt,name=replica,proto3" json:"replica,omitempty"`
	Seq     uint64 `protobuf:"varint,2,opt,name=seq,proto3" json:"seq,omitempty"`
	Payload []byte `protobuf:"bytes,3,opt,name=payload,proto3" json:"payload,omitempty"`
}

func (m *Delta) Reset()         { *m = Delta{} }
func (m *Delta) String() string { return proto.CompactTextString(m) }
func (m *Delta) ProtoMessage()  {}

func (m *Delta) GetReplica() string {
	if m != nil {
		return m.Replica
	}
	return ""
}

func (m *Delta) GetSeq() uint64 {
	if m != nil {
		return m.Seq
	}
	return 0
}

func (m *Delta) GetPayload() []byte {
	if m != nil {
		return m.Payload
	}
	return nil
}

// Ack is DeltaService's response: whether the receiving replica
// accepted the delta for local application.
type Ack struct {
	Applied bool `protobuf:"varint,1,opt,name=applied,proto3" json:"applied,omitempty"`
}

func (m *Ack) Reset()         { *m = Ack{} }
func (m *Ack) String() string { return proto.CompactTextString(m) }
func (m *Ack) ProtoMessage()  {}

func (m *Ack) GetApplied() bool {
	if m != nil {
		return m.Applied
	}
	return false
}
