package domain

// SyncRequest is the request body for the batch ingestion endpoint.
// @Description Batch of provider stage intervals and sensor readings.
type SyncRequest struct {
	// Stage intervals to ingest (deduplicated on user, bounds and stage)
	Intervals []StageIntervalInput `json:"intervals" validate:"omitempty,max=5000,dive"`
	// Sensor readings to ingest (deduplicated on user, kind and timestamp)
	Samples []SensorSampleInput `json:"samples" validate:"omitempty,max=20000,dive"`
}

// SyncResult is the response body for the batch ingestion endpoint.
// @Description Counts of received and newly stored records; the difference
// is duplicates dropped by the store.
type SyncResult struct {
	// Number of intervals in the request
	IntervalsReceived int `json:"intervals_received" example:"24"`
	// Number of intervals newly stored
	IntervalsStored int `json:"intervals_stored" example:"20"`
	// Number of sensor readings in the request
	SamplesReceived int `json:"samples_received" example:"480"`
	// Number of sensor readings newly stored
	SamplesStored int `json:"samples_stored" example:"480"`
}
