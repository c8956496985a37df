// Package shipment provides the Shipment aggregate: the persisted record of
// one order's physical parcel. A shipment belongs to exactly one order, is
// created once the order is ready to ship, and is never deleted - waybill
// numbers are appended and details edited while the carrier still allows it.
package shipment
