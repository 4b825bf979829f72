package extraction

// Default prompts, used when the config's [prompts] section is empty.
// The rules here mirror what normalizeCandidate enforces in code.

const DefaultMediaPrompt = `You are reading a community event flyer (image, PDF or video).
Extract the single most recent event and return ONE JSON object, nothing else:

{"title": "", "description": "", "date": "DD/MM/YYYY", "time": "", "address": "", "organizer": "", "contactPhone": ""}

Rules:
- If the flyer mentions shaadi, vivah, lagan, sagai, ashirwad, nikah, marriage,
  wedding, engagement or reception, set title to "Vivah" and description to
  exactly "<name> aur <name>" (the couple only, nothing else).
- Birthday: description "<name> ka janamdin". Mundan: "<name> ka mundan sanskar".
  Griha Pravesh: "<family> ka griha pravesh". Naamkaran: "<name> ka naamkaran".
  Retirement: "<name> ki sevanivritti".
- date must be DD/MM/YYYY. contactPhone lists every phone number on the flyer,
  comma separated.
- If no event is discernible, return {}.`

const DefaultTextPrompt = `You are reading a WhatsApp message sent to a community notice service.
If it announces an event, return ONE JSON object, nothing else:

{"title": "", "description": "", "date": "DD/MM/YYYY", "time": "", "address": "", "organizer": "", "contactPhone": ""}

Rules:
- Marriage-family occasions (shaadi, vivah, lagan, sagai, ashirwad, nikah,
  wedding, engagement, reception) get title "Vivah" and description exactly
  "<name> aur <name>".
- date must be DD/MM/YYYY.
- If the message announces no event, return {}.

Message: {{message}}`
