package efficiency

import "github.com/kilianp07/roomutil/core/model"

// rec builds a joined record with the given efficiency inputs.
func rec(room, program string, day model.Day, session model.Session, participants, capacity float64) model.Record {
	s := model.Section{Room: room, Program: program, Day: day, Session: session, Participants: model.Valid(participants)}
	r := model.Room{Name: room, Capacity: model.Valid(capacity)}
	return model.NewRecord(s, &r)
}

// undefinedRec has no matching room and therefore no efficiency.
func undefinedRec(room string, day model.Day, session model.Session) model.Record {
	return model.NewRecord(model.Section{Room: room, Day: day, Session: session, Participants: model.Valid(10)}, nil)
}
