// Package efficiency aggregates joined section records into room
// utilization statistics: mean efficiency by room, by program and by
// day×session slot, distinct-room occupancy per slot, and the three-bucket
// summary of rooms. Every aggregation is a pure pass over the records:
// extract the group key, accumulate, then finalize into rounded
// percentages. Fixed day and session domains are enumerated first and
// computed values merged onto them, so slot views are dense and ordered.
package efficiency
