// Package scanner turns a stream of barcode detections into the ordered,
// de-duplicated scan list of the active batch.
//
// # States
//
//	Idle ──start──▶ Capturing ──detect──▶ Evaluating
//	  ▲                 │                   │
//	  └──────stop───────┘                   ├─duplicate/failed─▶ Idle
//	                    ▲                   │
//	                    └─────accepted──────┘
//
// Next is the pure transition function; Engine drives it and performs the side
// effects (camera, feedback, persistence). While an evaluation is running the
// engine is in Evaluating and every other detection is dropped, which is what
// keeps a barcode held in front of the camera from being recorded twice and
// serializes the read-modify-write of the batches collection.
//
// # Persistence
//
// Each accepted or removed scan rewrites the whole scan list of the batch via
// a Persister (batches.Repository). A batch deleted behind the engine's back is
// not an error: the write is a no-op and a warning is logged.
//
// A duplicate leaves the camera off so the operator can read the feedback; an
// accepted scan resumes capturing after the configured delay.
package scanner
