package driver

// Dates are stored as unix seconds anchored at UTC midnight; time_rank is
// minutes since midnight (-1 when the source string resisted parsing) and
// exists only for ordering. The display string lives in e.time.

const eventReturn = `
		RETURN e.uuid AS uuid,
			e.event_index AS event_index,
			e.title AS title,
			e.description AS description,
			e.date AS date,
			e.time AS time,
			e.time_rank AS time_rank,
			e.address AS address,
			e.organizer AS organizer,
			e.contact_phone AS contact_phone,
			e.media_url AS media_url,
			e.media_type AS media_type,
			e.source_phone AS source_phone,
			e.extracted_text AS extracted_text,
			e.status AS status,
			e.reminder_sent AS reminder_sent,
			e.created_at AS created_at`

const (
	// Single-statement increment; the store never reads the counter
	// separately from bumping it.
	BumpCounterQuery = `
		MERGE (c:Counter {name: $name})
		SET c.value = coalesce(c.value, 0) + 1
		RETURN c.value AS value
	`

	SaveEventQuery = `
		MERGE (e:Event {uuid: $uuid})
		SET e.event_index = $event_index,
			e.title = $title,
			e.description = $description,
			e.date = $date,
			e.time = $time,
			e.time_rank = $time_rank,
			e.address = $address,
			e.organizer = $organizer,
			e.contact_phone = $contact_phone,
			e.media_url = $media_url,
			e.media_type = $media_type,
			e.source_phone = $source_phone,
			e.extracted_text = $extracted_text,
			e.status = $status,
			e.reminder_sent = $reminder_sent,
			e.created_at = $created_at
		RETURN e.uuid AS uuid
	`

	FindDuplicateEventQuery = `
		MATCH (e:Event)
		WHERE e.date = $date AND e.time = $time AND e.description = $description
		RETURN e.uuid AS uuid, e.event_index AS event_index
		LIMIT 1
	`

	GetEventByIndexQuery = `
		MATCH (e:Event {event_index: $event_index})` + eventReturn + `
		LIMIT 1
	`

	EventsBetweenQuery = `
		MATCH (e:Event)
		WHERE e.date >= $start AND e.date < $end` + eventReturn + `
		ORDER BY e.time_rank, e.time
	`

	UpcomingEventsQuery = `
		MATCH (e:Event)
		WHERE e.date >= $start` + eventReturn + `
		ORDER BY e.date, e.time_rank, e.time
		LIMIT $limit
	`

	SearchEventsQuery = `
		MATCH (e:Event)
		WHERE toLower(e.title) CONTAINS $needle
			OR toLower(e.description) CONTAINS $needle
			OR toLower(e.address) CONTAINS $needle
			OR toLower(e.organizer) CONTAINS $needle` + eventReturn + `
		ORDER BY e.date, e.time_rank
	`

	ListEventsQuery = `
		MATCH (e:Event)` + eventReturn + `
		ORDER BY e.event_index DESC
	`

	UpdateEventStatusQuery = `
		MATCH (e:Event {event_index: $event_index})
		SET e.status = $status
		RETURN e.uuid AS uuid
	`

	MarkReminderSentQuery = `
		MATCH (e:Event {uuid: $uuid})
		SET e.reminder_sent = true
		RETURN e.uuid AS uuid
	`

	ReminderDueQuery = `
		MATCH (e:Event)
		WHERE e.date >= $start AND e.date < $end
			AND e.reminder_sent = false
			AND e.status = 'confirmed'` + eventReturn + `
		ORDER BY e.time_rank, e.time
	`

	SaveContactQuery = `
		MERGE (c:Contact {phone: $phone})
		ON CREATE SET c.uuid = $uuid,
			c.name = $name,
			c.type = $type,
			c.opt_out = false,
			c.last_interaction = $last_interaction
		RETURN c.uuid AS uuid
	`

	GetContactByPhoneQuery = `
		MATCH (c:Contact {phone: $phone})
		RETURN c.uuid AS uuid, c.phone AS phone, c.name AS name,
			c.type AS type, c.opt_out AS opt_out,
			c.last_interaction AS last_interaction
		LIMIT 1
	`

	ListContactsQuery = `
		MATCH (c:Contact)
		WHERE NOT coalesce(c.opt_out, false)
		RETURN c.uuid AS uuid, c.phone AS phone, c.name AS name,
			c.type AS type, c.opt_out AS opt_out,
			c.last_interaction AS last_interaction
		ORDER BY c.name
	`

	TouchContactQuery = `
		MATCH (c:Contact {phone: $phone})
		SET c.last_interaction = $last_interaction
		RETURN c.uuid AS uuid
	`

	SetContactOptOutQuery = `
		MATCH (c:Contact {phone: $phone})
		SET c.opt_out = $opt_out
		RETURN c.uuid AS uuid
	`
)
